package typeschema

// Package typeschema converts a graph of type definitions, exposed by an
// external type-checking service through the typesys capability set, into a
// compact JSON Schema draft-07 document.
//
// The generator handles arbitrarily self-referential type graphs: fragments
// are pre-registered before descending into children so any identity is
// entered at most once, structurally identical fragments built from distinct
// declarations are merged by content digest, and every fragment embedded at
// more than one site is promoted into $defs with $ref pointers rewritten in
// place. Definitions left unreachable after promotion are pruned, and the
// final document is checked against the draft-07 meta-schema before being
// returned.
//
// Design policy:
// - Keep only public APIs in the root package; put the engine under internal/.
// - Place the type-service capability set under typesys/ (with an in-memory
//   implementation under typesys/typetest for tests) and the document model
//   under jsonschema/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := typeschema.Create(rootType,
//		typeschema.WithExclude("**/generated/**"),
//		typeschema.WithExtra("$id", "https://example.com/config.json"),
//	)
