package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGet_EndToEnd(t *testing.T) {
	// Mock server responds after 10ms, well within the 1s timeout
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"body":"response"}`))
	}))
	defer server.Close()

	d := NewDispatcher()

	type payload struct {
		Body string `json:"body"`
	}

	v, err := Get[payload](context.Background(), d, server.URL, nil, JSON[payload](),
		Timeout(1*time.Second))
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if v.Body != "response" {
		t.Errorf("Expected decoded value %q, got %q", "response", v.Body)
	}
}

func TestPost_SendsBody(t *testing.T) {
	var received []byte
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		received, _ = io.ReadAll(r.Body)
		w.Write([]byte(`"created"`))
	}))
	defer server.Close()

	d := NewDispatcher()

	v, err := Post[string](context.Background(), d, server.URL, nil, `{"name":"x"}`, JSON[string]())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if method != "POST" {
		t.Errorf("Expected POST, got %s", method)
	}
	if string(received) != `{"name":"x"}` {
		t.Errorf("Unexpected body received: %s", received)
	}
	if v != "created" {
		t.Errorf("Expected decoded %q, got %q", "created", v)
	}
}

func TestVerbWrappers_BindMethods(t *testing.T) {
	tests := []struct {
		name     string
		call     func(ctx context.Context, d *Dispatcher, url string) error
		expected string
	}{
		{
			name: "Get",
			call: func(ctx context.Context, d *Dispatcher, url string) error {
				_, err := Get[string](ctx, d, url, nil, Text())
				return err
			},
			expected: "GET",
		},
		{
			name: "Delete",
			call: func(ctx context.Context, d *Dispatcher, url string) error {
				_, err := Delete[string](ctx, d, url, nil, Text())
				return err
			},
			expected: "DELETE",
		},
		{
			name: "Put",
			call: func(ctx context.Context, d *Dispatcher, url string) error {
				_, err := Put[string](ctx, d, url, nil, "body", Text())
				return err
			},
			expected: "PUT",
		},
		{
			name: "Post",
			call: func(ctx context.Context, d *Dispatcher, url string) error {
				_, err := Post[string](ctx, d, url, nil, "body", Text())
				return err
			},
			expected: "POST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				method = r.Method
				w.Write([]byte("ok"))
			}))
			defer server.Close()

			d := NewDispatcher()
			if err := tt.call(context.Background(), d, server.URL); err != nil {
				t.Fatalf("Expected success, got %v", err)
			}
			if method != tt.expected {
				t.Errorf("Expected method %s, got %s", tt.expected, method)
			}
		})
	}
}

func TestRequestOptions_Bind(t *testing.T) {
	req := build("GET", "http://example.com", nil, nil, []RequestOption{
		Pause(25 * time.Millisecond),
		Timeout(3 * time.Second),
	})

	if req.Pause != 25*time.Millisecond {
		t.Errorf("Expected pause 25ms, got %v", req.Pause)
	}
	if req.Timeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %v", req.Timeout)
	}
}
