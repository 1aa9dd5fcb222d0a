package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riposte.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
environments:
  staging:
    baseUrl: https://staging.example.com
    headers:
      Authorization: Bearer staging-token
requests:
  getUser:
    url: /users/1
    method: GET
    pause: 100ms
    timeout: 2s
    extract:
      name: user.name
  createUser:
    url: /users
    method: POST
    headers:
      Content-Type: application/json
    body: '{"name":"x"}'
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	env := cfg.Environments["staging"]
	assert.Equal(t, "https://staging.example.com", env.BaseURL)
	assert.Equal(t, "Bearer staging-token", env.Headers["Authorization"])

	req := cfg.Requests["getUser"]
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, 100*time.Millisecond, req.Pause.Std())
	assert.Equal(t, 2*time.Second, req.Timeout.Std())
	assert.Equal(t, "user.name", req.Extract["name"])
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/riposte.yaml")
	assert.ErrorContains(t, err, "not found")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "environments: [not: a map")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing")
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `
environments:
  dev:
    baseUrl: http://localhost:8080
requests:
  slow:
    url: /slow
    method: GET
    timeout: not-a-duration
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid duration")
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "Missing method",
			content: `
environments:
  dev:
    baseUrl: http://localhost:8080
requests:
  broken:
    url: /x
`,
		},
		{
			name: "Unknown verb",
			content: `
environments:
  dev:
    baseUrl: http://localhost:8080
requests:
  broken:
    url: /x
    method: FETCH
`,
		},
		{
			name: "Missing base URL",
			content: `
environments:
  dev: {}
requests:
  ok:
    url: /x
    method: GET
`,
		},
		{
			name: "No requests",
			content: `
environments:
  dev:
    baseUrl: http://localhost:8080
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}
