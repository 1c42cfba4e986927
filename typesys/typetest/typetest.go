// Package typetest provides an in-memory typesys implementation for tests.
// It stands in for a real type-checking service: handles built here carry the
// same identity/kind/payload surface the generator consumes in production.
package typetest

import (
	"sync/atomic"

	"github.com/reoring/typeschema/typesys"
)

var lastID atomic.Uint64

// T is a concrete in-memory type node. It implements typesys.Type and offers
// chainable mutators so tests read like declarations.
type T struct {
	id    typesys.ID
	kind  typesys.Kind
	text  string
	parts []typesys.Type
	elem  typesys.Type
	props []typesys.Property
	files []string
}

func newT(kind typesys.Kind) *T {
	return &T{id: typesys.ID(lastID.Add(1)), kind: kind}
}

func (t *T) ID() typesys.ID                 { return t.id }
func (t *T) Kind() typesys.Kind             { return t.kind }
func (t *T) Text() string                   { return t.text }
func (t *T) Members() []typesys.Type        { return t.parts }
func (t *T) Element() typesys.Type          { return t.elem }
func (t *T) Properties() []typesys.Property { return t.props }
func (t *T) DeclaringFiles() []string       { return t.files }

// String returns the non-literal string type.
func String() *T { return newT(typesys.KindString) }

// Number returns the non-literal number type.
func Number() *T { return newT(typesys.KindNumber) }

// Boolean returns the non-literal boolean type.
func Boolean() *T { return newT(typesys.KindBoolean) }

// Null returns the null type.
func Null() *T { return newT(typesys.KindNull) }

// Undefined returns the undefined type.
func Undefined() *T { return newT(typesys.KindUndefined) }

// StringLiteral returns a string literal type. The declaration text carries
// surrounding quotes, as a checker would report it.
func StringLiteral(value string) *T {
	t := newT(typesys.KindStringLiteral)
	t.text = `"` + value + `"`
	return t
}

// NumberLiteral returns a number literal type with the given source text.
func NumberLiteral(text string) *T {
	t := newT(typesys.KindNumberLiteral)
	t.text = text
	return t
}

// BooleanLiteral returns a boolean literal type.
func BooleanLiteral(v bool) *T {
	t := newT(typesys.KindBooleanLiteral)
	if v {
		t.text = "true"
	} else {
		t.text = "false"
	}
	return t
}

// EnumMember returns an enum member whose value declaration has the given
// source text (quotes included for string values). Empty text models a member
// whose value declaration did not resolve.
func EnumMember(text string) *T {
	t := newT(typesys.KindEnumMember)
	t.text = text
	return t
}

// Enum returns an enum type over the given members.
func Enum(members ...*T) *T {
	t := newT(typesys.KindEnum)
	t.parts = asTypes(members)
	return t
}

// Union returns a union over the given members.
func Union(members ...*T) *T {
	t := newT(typesys.KindUnion)
	t.parts = asTypes(members)
	return t
}

// Intersection returns an intersection over the given members.
func Intersection(members ...*T) *T {
	t := newT(typesys.KindIntersection)
	t.parts = asTypes(members)
	return t
}

// Tuple returns a tuple over the given elements.
func Tuple(elements ...*T) *T {
	t := newT(typesys.KindTuple)
	t.parts = asTypes(elements)
	return t
}

// Array returns an array-like type. A nil element models a collection whose
// element type the checker cannot resolve.
func Array(elem *T) *T {
	t := newT(typesys.KindArrayLike)
	if elem != nil {
		t.elem = elem
	}
	return t
}

// Class returns a constructable type.
func Class() *T { return newT(typesys.KindClassLike) }

// Object returns an object type with no properties; add them with Prop.
func Object() *T { return newT(typesys.KindObjectLike) }

// Prop appends a named property and returns the receiver for chaining.
// Property types are taken as already resolved at the use site.
func (t *T) Prop(name string, typ typesys.Type) *T {
	t.props = append(t.props, typesys.Property{Name: name, Type: typ})
	return t
}

// AddMember appends a constituent to a composite type after construction.
// Needed to declare self-referential unions and intersections.
func (t *T) AddMember(m typesys.Type) *T {
	t.parts = append(t.parts, m)
	return t
}

// DeclaredIn records declaring source files and returns the receiver.
func (t *T) DeclaredIn(files ...string) *T {
	t.files = append(t.files, files...)
	return t
}

func asTypes(ts []*T) []typesys.Type {
	if len(ts) == 0 {
		return nil
	}
	out := make([]typesys.Type, len(ts))
	for i, m := range ts {
		out[i] = m
	}
	return out
}
