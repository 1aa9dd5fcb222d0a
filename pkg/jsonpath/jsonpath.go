// Package jsonpath extracts values from JSON documents using gjson path
// expressions (e.g. "users.0.name").
package jsonpath

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Extract returns the value at path as a string
func Extract(body []byte, path string) (string, error) {
	if len(body) == 0 {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty path expression")
	}

	result := gjson.GetBytes(body, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}

	// Distinguish an explicit null from a missing path
	if result.Type == gjson.Null {
		return "null", nil
	}

	return result.String(), nil
}

// ExtractAll resolves a map of name-to-path expressions against one document.
// All paths are attempted; the first failure is reported alongside whatever
// extracted successfully.
func ExtractAll(body []byte, paths map[string]string) (map[string]string, error) {
	results := make(map[string]string, len(paths))
	var firstErr error

	for name, path := range paths {
		value, err := Extract(body, path)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("extracting %q: %w", name, err)
			}
			continue
		}
		results[name] = value
	}

	return results, firstErr
}
