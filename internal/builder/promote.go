package builder

import (
	"strconv"

	"github.com/reoring/typeschema/jsonschema"
)

// PromoteDefs extracts every fragment embedded at more than one site into a
// definitions table and rewrites the live instances into $ref pointers.
// Cycle-cache entries promote before dedup-cache entries; a fragment
// referenced through both caches is promoted exactly once. Ids are sequential
// per build, never process-global.
func (b *Builder) PromoteDefs() map[string]jsonschema.Fragment {
	n := 0
	next := func() string {
		n++
		return "def-" + strconv.Itoa(n)
	}
	defs := b.types.Promote(jsonschema.DefsPrefix, next)
	for id, f := range b.dedup.Promote(jsonschema.DefsPrefix, next) {
		defs[id] = f
	}
	return defs
}
