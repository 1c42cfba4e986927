package typeschema

import (
	"errors"

	"github.com/reoring/typeschema/internal/builder"
	"github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/typesys"
)

// ErrNilRootType is returned by Create when no root type is supplied.
var ErrNilRootType = errors.New("typeschema: nil root type")

// Create builds the JSON Schema document for the type graph rooted at root.
//
// The build is a synchronous depth-first traversal with state scoped to this
// call: concurrent Create calls are independent and share nothing. The
// returned document carries the draft-07 $schema tag and a $defs table
// restricted to reachable entries, and has passed meta-schema validation; a
// validation failure fails the whole call with no partial result.
func Create(root typesys.Type, opts ...Option) (jsonschema.Document, error) {
	if root == nil {
		return nil, ErrNilRootType
	}
	o := newCreateOptions(opts)

	b := builder.New(root, o.overrides, o.excludePatterns())
	rootFragment := b.Build(root, true)
	defs := b.PromoteDefs()

	doc := jsonschema.NewDocument(rootFragment, defs, o.extra)
	doc = builder.Prune(doc)
	if err := jsonschema.Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
