package jsonschema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	jschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationError reports that a generated document does not satisfy the
// draft-07 meta-schema. The underlying compiler error is preserved unmodified.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("jsonschema: document failed draft-07 validation: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the document against the JSON Schema draft-07 meta-schema.
// It returns a *ValidationError on failure and nil when the document is a
// well-formed schema.
func Validate(doc Document) error {
	raw, err := json.Marshal(map[string]any(doc))
	if err != nil {
		return &ValidationError{Err: err}
	}
	c := jschema.NewCompiler()
	c.Draft = jschema.Draft7
	if err := c.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return &ValidationError{Err: err}
	}
	if _, err := c.Compile("schema.json"); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
