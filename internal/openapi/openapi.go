// Package openapi loads the API specification document that the demo server
// exposes without any access check.
package openapi

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the parsed API specification, retained as JSON so the
// /swagger.json route can serve it directly.
type Document struct {
	Path string
	JSON []byte
}

// Load reads a YAML (or JSON - YAML is a superset) OpenAPI document from disk
// and converts it to JSON. Called once at startup; a missing or malformed
// file fails the process.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read API specification %s: %w", path, err)
	}

	var parsed any
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse API specification %s: %w", path, err)
	}

	jsonBytes, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to convert API specification %s to JSON: %w", path, err)
	}

	return &Document{Path: path, JSON: jsonBytes}, nil
}
