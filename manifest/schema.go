package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidRecord is returned when a record does not satisfy the manifest schema.
var ErrInvalidRecord = errors.New("invalid manifest record")

// recordSchema describes the JSON written for every hook.
const recordSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["title", "files"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "files": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name", "content"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "content": {"type": "string"}
        }
      }
    },
    "dependencies": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

// Validator checks records against the manifest schema.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the manifest schema.
func NewValidator() (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recordSchema))
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate reports every schema violation of record as one error.
func (v *Validator) Validate(record *Record) error {
	data, err := Encode(record, false)
	if err != nil {
		return err
	}
	if err := v.ValidateJSON(data); err != nil {
		return fmt.Errorf("%q: %w", record.Title, err)
	}
	return nil
}

// ValidateJSON checks an already serialized record, e.g. one read back from disk.
func (v *Validator) ValidateJSON(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(problems, "; "))
}
