// Package jsonschema wraps JSON Schema compilation and validation behind a
// small reusable Validator type.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator is a compiled JSON Schema ready for repeated use. It is safe for
// concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile compiles a schema read from r. The name identifies the schema in
// error output and must look like a file name or URL.
func Compile(name string, r io.Reader) (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(name, r); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// CompileString compiles a schema held in a string
func CompileString(name, schema string) (*Validator, error) {
	return Compile(name, strings.NewReader(schema))
}

// CompileFile compiles a schema from a file on disk
func CompileFile(path string) (*Validator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	defer f.Close()

	return Compile(filepath.Base(path), f)
}

// Validate checks data, which must be a JSON document, against the schema
func (v *Validator) Validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	return nil
}
