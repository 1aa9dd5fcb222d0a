package jsonschema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func TestCompileString_And_Validate(t *testing.T) {
	v, err := CompileString("user.json", userSchema)
	require.NoError(t, err)

	assert.NoError(t, v.Validate([]byte(`{"name":"ada","age":36}`)))
}

func TestValidate_Violations(t *testing.T) {
	v, err := CompileString("user.json", userSchema)
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
	}{
		{"Missing required field", `{"age":36}`},
		{"Wrong type", `{"name":42}`},
		{"Constraint violation", `{"name":"ada","age":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate([]byte(tt.doc))
			assert.ErrorContains(t, err, "schema validation")
		})
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	v, err := CompileString("user.json", userSchema)
	require.NoError(t, err)

	assert.ErrorContains(t, v.Validate([]byte(`{not json`)), "invalid JSON")
}

func TestCompileString_InvalidSchema(t *testing.T) {
	_, err := CompileString("bad.json", `{"type": 42}`)
	assert.ErrorContains(t, err, "invalid schema")
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte(userSchema), 0o644))

	v, err := CompileFile(path)
	require.NoError(t, err)
	assert.NoError(t, v.Validate([]byte(`{"name":"ada"}`)))

	_, err = CompileFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading schema")
}
