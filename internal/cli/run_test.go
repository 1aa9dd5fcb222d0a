package cli

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wesleyorama2/riposte/internal/config"
)

func TestBuildConfiguredRequest(t *testing.T) {
	env := config.Environment{
		BaseURL: "https://api.example.com",
		Headers: map[string]string{"Authorization": "Bearer env-token"},
	}
	reqConfig := config.Request{
		URL:     "/users/1",
		Method:  "GET",
		Headers: map[string]string{"Accept": "application/json"},
		Pause:   config.Duration(100 * time.Millisecond),
		Timeout: config.Duration(2 * time.Second),
	}

	req := buildConfiguredRequest(env, reqConfig, zerolog.Nop())

	if req.URL != "https://api.example.com/users/1" {
		t.Errorf("Expected resolved URL, got %s", req.URL)
	}
	if req.Method != "GET" {
		t.Errorf("Expected GET, got %s", req.Method)
	}
	if req.Pause != 100*time.Millisecond {
		t.Errorf("Expected pause 100ms, got %v", req.Pause)
	}
	if req.Timeout != 2*time.Second {
		t.Errorf("Expected timeout 2s, got %v", req.Timeout)
	}

	// Both environment and request headers survive validation
	if len(req.Headers) != 2 {
		t.Fatalf("Expected 2 headers, got %d", len(req.Headers))
	}
}

func TestBuildConfiguredRequest_DropsInvalidHeaders(t *testing.T) {
	env := config.Environment{
		BaseURL: "https://api.example.com",
		Headers: map[string]string{"": "broken"},
	}
	reqConfig := config.Request{URL: "/ping", Method: "GET"}

	req := buildConfiguredRequest(env, reqConfig, zerolog.Nop())

	if len(req.Headers) != 0 {
		t.Errorf("Expected invalid environment header to be dropped, got %v", req.Headers)
	}
}

func TestBuildConfiguredRequest_Body(t *testing.T) {
	env := config.Environment{BaseURL: "https://api.example.com"}
	reqConfig := config.Request{
		URL:    "/users",
		Method: "POST",
		Body:   `{"name":"x"}`,
	}

	req := buildConfiguredRequest(env, reqConfig, zerolog.Nop())

	if req.Body != `{"name":"x"}` {
		t.Errorf("Expected body to be set, got %v", req.Body)
	}
}
