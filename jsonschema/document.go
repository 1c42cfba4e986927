package jsonschema

import (
	json "github.com/goccy/go-json"
)

// Document is a complete JSON Schema draft-07 document: the root fragment's
// keywords at the top level, a $defs table of promoted definitions, and the
// fixed $schema tag. The root fragment is embedded by key copy, so a root
// self-reference is always spelled {"$ref": "#"} rather than a $defs pointer.
type Document map[string]any

// NewDocument assembles a document from a root fragment, a definitions table
// and caller-supplied extra keys. Extra keys win over computed keys, except
// $defs which is always the promoted table.
func NewDocument(root Fragment, defs map[string]Fragment, extra map[string]any) Document {
	doc := Document{"$schema": Version}
	for k, v := range root {
		doc[k] = v
	}
	for k, v := range extra {
		doc[k] = v
	}
	table := make(map[string]any, len(defs))
	for id, f := range defs {
		table[id] = f
	}
	doc["$defs"] = table
	return doc
}

// Defs returns the $defs table, or nil when absent.
func (d Document) Defs() map[string]any {
	m, _ := d["$defs"].(map[string]any)
	return m
}

// MarshalJSON serializes the document with sorted keys.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(d))
}
