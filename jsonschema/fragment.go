// Package jsonschema holds the JSON Schema document model produced by the
// generator: mutable schema fragments, the draft-07 document envelope, content
// digesting for structural deduplication, and meta-schema validation.
package jsonschema

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Version is the fixed $schema tag of every generated document.
const Version = "http://json-schema.org/draft-07/schema#"

// DefsPrefix is the pointer prefix used for promoted definitions.
const DefsPrefix = "#/$defs"

// Fragment is one JSON-Schema-shaped node: a mapping of schema keywords
// ("type", "enum", "properties", "items", "anyOf", "allOf", "$ref",
// "$comment") to values.
//
// While a build is in flight a Fragment is a mutable, shared-identity object:
// several sites of the tree may embed the same Fragment value, and because Go
// maps are references, rewriting its keys once is visible at every embedding
// site. That aliasing is what makes deferred $ref promotion work without
// re-walking the tree. Once the document is finalized a Fragment is treated
// as plain data.
type Fragment map[string]any

// Ref returns a fragment holding a single $ref pointer.
func Ref(target string) Fragment {
	return Fragment{"$ref": target}
}

// Assign replaces the content of f with the content of src, preserving f's
// identity. Embedding sites that alias f observe the new content.
func (f Fragment) Assign(src Fragment) {
	for k := range f {
		delete(f, k)
	}
	for k, v := range src {
		f[k] = v
	}
}

// Clone returns a shallow copy of f with a fresh identity.
func (f Fragment) Clone() Fragment {
	out := make(Fragment, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Digest returns a hex digest of the fragment's canonical serialization.
// Map keys serialize in sorted order, so structurally identical fragments
// digest identically regardless of construction order. The second result is
// false when the fragment cannot be serialized; such fragments are simply
// never deduplicated. The stdlib encoder is used here because a fragment can
// still contain itself at digest time and must surface as an encoding error,
// not a crash; non-finite numbers fail the same way.
func (f Fragment) Digest() (string, bool) {
	raw, err := json.Marshal(map[string]any(f))
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), true
}
