// Package typesys models the capability set the schema generator needs from a
// type-checking service. The service classifies each type handle into exactly
// one Kind and exposes the payload that kind carries (constituent types,
// element type, properties, declaring files). The generator never inspects
// source code itself; everything flows through this interface.
package typesys

// ID identifies a declared type. Two handles for the same declared type must
// report the same ID within one checker session.
type ID uint64

// Kind is the closed classification of a type handle.
type Kind int

const (
	// KindUnknown covers handles the service cannot classify. The generator
	// treats them as not representable.
	KindUnknown Kind = iota
	KindString
	KindStringLiteral
	KindNumber
	KindNumberLiteral
	KindBoolean
	KindBooleanLiteral
	KindNull
	KindUndefined
	KindEnum
	KindEnumMember
	// KindClassLike covers classes and any type with construct signatures.
	KindClassLike
	KindTuple
	// KindArrayLike covers types behaving as indexed collections under the
	// service's own array-likeness test.
	KindArrayLike
	KindUnion
	KindIntersection
	KindObjectLike
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindString:         "string",
	KindStringLiteral:  "string-literal",
	KindNumber:         "number",
	KindNumberLiteral:  "number-literal",
	KindBoolean:        "boolean",
	KindBooleanLiteral: "boolean-literal",
	KindNull:           "null",
	KindUndefined:      "undefined",
	KindEnum:           "enum",
	KindEnumMember:     "enum-member",
	KindClassLike:      "class",
	KindTuple:          "tuple",
	KindArrayLike:      "array",
	KindUnion:          "union",
	KindIntersection:   "intersection",
	KindObjectLike:     "object",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Property is a named object member with its type resolved at the site where
// the owning object is used, not where the property was declared. Use-site
// resolution matters for generic instantiation and is the service's job.
type Property struct {
	Name string
	Type Type
}

// Type is an opaque handle onto a node of the type graph.
type Type interface {
	// ID returns the identity of the declared type behind this handle.
	ID() ID
	// Kind classifies the handle.
	Kind() Kind
	// Text returns the source text of a literal value declaration ("\"on\"",
	// "42", "true"). Empty for non-literal kinds and for enum members whose
	// value declaration did not resolve.
	Text() string
	// Members returns the ordered constituents of union, intersection, tuple
	// and enum kinds. Nil for other kinds.
	Members() []Type
	// Element returns the element type of an array-like, or nil when the
	// service cannot resolve one.
	Element() Type
	// Properties returns the ordered properties of an object-like kind.
	Properties() []Property
	// DeclaringFiles lists the source files containing declarations of this
	// type. May be empty for synthesized types.
	DeclaringFiles() []string
}
