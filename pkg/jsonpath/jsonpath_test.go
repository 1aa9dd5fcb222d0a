package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var doc = []byte(`{
	"user": {"name": "ada", "id": 7},
	"tags": ["a", "b"],
	"deleted": null
}`)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Nested field", "user.name", "ada"},
		{"Numeric field", "user.id", "7"},
		{"Array index", "tags.1", "b"},
		{"Explicit null", "deleted", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Extract(doc, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestExtract_Errors(t *testing.T) {
	_, err := Extract(doc, "user.missing")
	assert.ErrorContains(t, err, "path not found")

	_, err = Extract(nil, "user.name")
	assert.ErrorContains(t, err, "empty JSON")

	_, err = Extract(doc, "")
	assert.ErrorContains(t, err, "empty path")
}

func TestExtractAll(t *testing.T) {
	values, err := ExtractAll(doc, map[string]string{
		"name": "user.name",
		"id":   "user.id",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada", values["name"])
	assert.Equal(t, "7", values["id"])
}

func TestExtractAll_PartialFailure(t *testing.T) {
	values, err := ExtractAll(doc, map[string]string{
		"name":    "user.name",
		"missing": "nope.nope",
	})

	// The good path still extracts; the failure is reported
	assert.Error(t, err)
	assert.Equal(t, "ada", values["name"])
}
