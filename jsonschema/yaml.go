package jsonschema

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML renders the document as YAML, for workflows that keep schemas next to
// OpenAPI or CRD manifests. Fragments render as plain mappings.
func (d Document) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlValue(map[string]any(d))); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// yamlValue rewrites Fragment values into plain maps so the YAML encoder does
// not tag them with the Go type name.
func yamlValue(v any) any {
	switch m := v.(type) {
	case Fragment:
		return yamlValue(map[string]any(m))
	case Document:
		return yamlValue(map[string]any(m))
	case map[string]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = yamlValue(val)
		}
		return out
	case []any:
		out := make([]any, len(m))
		for i, val := range m {
			out[i] = yamlValue(val)
		}
		return out
	default:
		return v
	}
}
