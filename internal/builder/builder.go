// Package builder implements the recursive schema builder: kind dispatch over
// the type graph, placeholder-based cycle breaking, content-digest
// deduplication, promotion of shared fragments into $defs, and pruning of
// unreachable definitions.
package builder

import (
	"reflect"
	"strconv"

	"github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/typesys"
)

// Builder turns one type graph into schema fragments. All state is owned by a
// single build: construct one Builder per document and discard it afterwards.
type Builder struct {
	root      typesys.Type
	overrides map[typesys.ID]jsonschema.Fragment
	filter    *ExclusionFilter

	// types breaks cycles: keyed by type identity, holding the in-progress
	// (later finalized) fragment for that type.
	types *cache[typesys.ID]
	// dedup merges structurally identical fragments built from distinct
	// identities, keyed by canonical content digest.
	dedup *cache[string]
}

// New prepares a builder for one document rooted at root.
func New(root typesys.Type, overrides map[typesys.ID]jsonschema.Fragment, exclude []string) *Builder {
	return &Builder{
		root:      root,
		overrides: overrides,
		filter:    NewExclusionFilter(exclude),
		types:     newCache[typesys.ID](),
		dedup:     newCache[string](),
	}
}

// Build returns the schema fragment for t, or nil when the type contributes
// nothing representable; callers must omit the property, element or member
// entirely rather than embed a nil.
//
// A non-nil result may be an in-progress fragment shared with other embedding
// sites; its content settles once the traversal that registered it returns.
func (b *Builder) Build(t typesys.Type, isRoot bool) jsonschema.Fragment {
	if t == nil {
		return nil
	}
	if f, ok := b.overrides[t.ID()]; ok {
		return f
	}
	if b.filter.Excluded(t) {
		return nil
	}

	switch t.Kind() {
	case typesys.KindString:
		return jsonschema.Fragment{"type": "string"}
	case typesys.KindNumber:
		return jsonschema.Fragment{"type": "number"}
	case typesys.KindBoolean:
		return jsonschema.Fragment{"type": "boolean"}
	case typesys.KindNull:
		return jsonschema.Fragment{"type": "null"}
	case typesys.KindStringLiteral, typesys.KindNumberLiteral, typesys.KindBooleanLiteral, typesys.KindEnumMember:
		v, ok := parseLiteral(t.Text())
		if !ok {
			return nil
		}
		return jsonschema.Fragment{"enum": []any{v}}
	case typesys.KindEnum:
		return buildEnum(t)
	case typesys.KindClassLike:
		// Instances are opaque; a constructable type has no data shape.
		return nil
	case typesys.KindTuple:
		return b.buildTuple(t)
	case typesys.KindArrayLike:
		return b.buildArray(t)
	case typesys.KindUndefined, typesys.KindUnknown:
		return nil
	}

	// The root type's self-reference resolves to the document root, never to
	// a $defs entry.
	if !isRoot && t.ID() == b.root.ID() {
		return jsonschema.Ref("#")
	}

	var target jsonschema.Fragment
	if isRoot {
		target = jsonschema.Fragment{}
	} else {
		// Cycle break: a repeat encounter returns the same in-progress
		// instance, so whatever the first encounter fills in later is
		// visible at every embedding site.
		if f, ok := b.types.Get(t.ID()); ok {
			return f
		}
		target = jsonschema.Fragment{}
		b.types.Set(t.ID(), target)
	}

	var result jsonschema.Fragment
	switch t.Kind() {
	case typesys.KindUnion:
		result = b.buildUnion(t)
	case typesys.KindIntersection:
		result = b.buildIntersection(t)
	default:
		result = b.buildObject(t)
	}
	if result == nil {
		return nil
	}
	target.Assign(result)
	if isRoot {
		return target
	}
	return b.dedupe(target)
}

// dedupe registers target under its content digest, or swaps it for the
// canonical instance when a structurally identical fragment was already
// built. Unhashable fragments skip deduplication entirely.
func (b *Builder) dedupe(target jsonschema.Fragment) jsonschema.Fragment {
	digest, ok := target.Digest()
	if !ok {
		return target
	}
	if canonical, hit := b.dedup.Get(digest); hit {
		return canonical
	}
	b.dedup.Set(digest, target)
	return target
}

func buildEnum(t typesys.Type) jsonschema.Fragment {
	var values []any
	for _, m := range t.Members() {
		v, ok := parseLiteral(m.Text())
		if !ok {
			continue
		}
		values = appendValue(values, v)
	}
	if len(values) == 0 {
		return nil
	}
	return jsonschema.Fragment{"enum": values}
}

func (b *Builder) buildTuple(t typesys.Type) jsonschema.Fragment {
	var items []any
	for _, elem := range t.Members() {
		if elem.Kind() == typesys.KindUndefined {
			continue
		}
		if f := b.Build(elem, false); f != nil {
			items = append(items, f)
		}
	}
	if len(items) == 0 {
		return jsonschema.Fragment{"type": "array"}
	}
	return jsonschema.Fragment{"type": "array", "items": items}
}

func (b *Builder) buildArray(t typesys.Type) jsonschema.Fragment {
	elem := t.Element()
	if elem == nil {
		return jsonschema.Fragment{"type": "array"}
	}
	f := b.Build(elem, false)
	if f == nil {
		return jsonschema.Fragment{"type": "array"}
	}
	return jsonschema.Fragment{"type": "array", "items": f}
}

func (b *Builder) buildUnion(t typesys.Type) jsonschema.Fragment {
	var alternatives []any
	var enumValues []any
	for _, m := range uniqueMembers(t.Members()) {
		f := b.Build(m, false)
		if f == nil {
			continue
		}
		// Flatten one level: literal and enum members pool their values into
		// one enum alternative; nested unions contribute their alternatives
		// directly.
		if values, ok := f["enum"].([]any); ok {
			for _, v := range values {
				enumValues = appendValue(enumValues, v)
			}
			continue
		}
		if nested, ok := f["anyOf"].([]any); ok {
			alternatives = append(alternatives, nested...)
			continue
		}
		alternatives = append(alternatives, f)
	}
	if len(enumValues) > 0 {
		alternatives = append(alternatives, jsonschema.Fragment{"enum": enumValues})
	}
	if len(alternatives) == 0 {
		return nil
	}
	return flatten(jsonschema.Fragment{"anyOf": alternatives})
}

func (b *Builder) buildIntersection(t typesys.Type) jsonschema.Fragment {
	var parts []any
	for _, m := range uniqueMembers(t.Members()) {
		if f := b.Build(m, false); f != nil {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return flatten(jsonschema.Fragment{"allOf": parts})
}

func (b *Builder) buildObject(t typesys.Type) jsonschema.Fragment {
	properties := map[string]any{}
	for _, p := range t.Properties() {
		if f := b.Build(p.Type, false); f != nil {
			properties[p.Name] = f
		}
	}
	if len(properties) == 0 {
		return nil
	}
	return jsonschema.Fragment{"properties": properties}
}

// flatten collapses a singleton anyOf/allOf to its only alternative,
// recursively, since that alternative may itself be a singleton wrapper. A
// singleton enum is deliberately left wrapped.
func flatten(f jsonschema.Fragment) jsonschema.Fragment {
	if alts, ok := f["anyOf"].([]any); ok && len(alts) == 1 {
		if inner, ok := alts[0].(jsonschema.Fragment); ok {
			return flatten(inner)
		}
	}
	if parts, ok := f["allOf"].([]any); ok && len(parts) == 1 {
		if inner, ok := parts[0].(jsonschema.Fragment); ok {
			return flatten(inner)
		}
	}
	return f
}

// uniqueMembers drops undefined members and collapses members sharing one
// identity, preserving first-occurrence order.
func uniqueMembers(members []typesys.Type) []typesys.Type {
	seen := map[typesys.ID]struct{}{}
	out := members[:0:0]
	for _, m := range members {
		if m == nil || m.Kind() == typesys.KindUndefined {
			continue
		}
		if _, dup := seen[m.ID()]; dup {
			continue
		}
		seen[m.ID()] = struct{}{}
		out = append(out, m)
	}
	return out
}

// appendValue appends v unless an equal value is already present, keeping
// first-occurrence order.
func appendValue(values []any, v any) []any {
	for _, have := range values {
		if reflect.DeepEqual(have, v) {
			return values
		}
	}
	return append(values, v)
}

// parseLiteral interprets the source text of a literal value declaration:
// surrounding quotes are stripped from strings, true/false and numbers are
// parsed, anything else is kept as raw text. Empty text means the declaration
// did not resolve.
func parseLiteral(text string) (any, bool) {
	if text == "" {
		return nil, false
	}
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0] {
		return text[1 : len(text)-1], true
	}
	switch text {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return n, true
	}
	return text, true
}
