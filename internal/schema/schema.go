// Package schema compiles JSON Schema documents (written as JSON or YAML)
// and validates mapped documents against them.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const resourceName = "schema.json"

// Schema is a compiled JSON Schema.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// ValidationError reports a document that does not satisfy a schema.
type ValidationError struct {
	Schema string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema %s: %v", e.Schema, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Load compiles a schema document. name is used in error messages.
// YAML documents are converted to JSON first; JSON passes through unchanged.
func Load(name string, data []byte) (*Schema, error) {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)

	if err := compiler.AddResource(resourceName, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema %s: %w", name, err)
	}

	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	return &Schema{name: name, compiled: compiled}, nil
}

// LoadFile reads and compiles the schema at path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Load(path, data)
}

// Name returns the name the schema was loaded under.
func (s *Schema) Name() string { return s.name }

// Validate checks value, a decoded JSON document. Failures are *ValidationError.
func (s *Schema) Validate(value any) error {
	if err := s.compiled.Validate(value); err != nil {
		return &ValidationError{Schema: s.name, Err: err}
	}

	return nil
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
