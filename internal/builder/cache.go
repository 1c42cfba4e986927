package builder

import (
	"strings"

	"github.com/reoring/typeschema/jsonschema"
)

// cache maps keys to live schema fragments for one build. It serves two
// roles: the cycle cache (keyed by type identity) and the dedup cache (keyed
// by content digest). Both share the same discipline: a successful Get marks
// the key as referenced, and every referenced entry is later promoted into a
// named definition.
type cache[K comparable] struct {
	entries map[K]jsonschema.Fragment
	order   []K
	refs    map[K]struct{}
}

func newCache[K comparable]() *cache[K] {
	return &cache[K]{
		entries: map[K]jsonschema.Fragment{},
		refs:    map[K]struct{}{},
	}
}

// Get returns the fragment stored under key. A hit marks the key as
// referenced: the entry was stored by an earlier encounter, so this lookup is
// at least the second site embedding the same fragment instance.
func (c *cache[K]) Get(key K) (jsonschema.Fragment, bool) {
	f, ok := c.entries[key]
	if ok {
		c.refs[key] = struct{}{}
	}
	return f, ok
}

// Has reports whether key is present without marking it referenced.
func (c *cache[K]) Has(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Set stores the fragment under key. First insertion order is remembered so
// promotion numbers definitions deterministically.
func (c *cache[K]) Set(key K, f jsonschema.Fragment) {
	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = f
}

// Promote extracts every referenced entry into the returned table. For each
// one it draws a fresh id from next, copies the fragment's current content
// out, then rewrites the live fragment in place into a single $ref pointer at
// prefix/id. Every site of the tree still embedding that fragment instance
// becomes a reference through the aliasing, with no tree walk. Entries never
// marked referenced stay embedded by value and are not returned.
func (c *cache[K]) Promote(prefix string, next func() string) map[string]jsonschema.Fragment {
	out := map[string]jsonschema.Fragment{}
	for _, key := range c.order {
		if _, shared := c.refs[key]; !shared {
			continue
		}
		live := c.entries[key]
		// A fragment referenced through both caches is rewritten by the first
		// Promote pass; extracting the leftover pointer would only chain refs.
		if r, ok := live["$ref"].(string); ok && len(live) == 1 && strings.HasPrefix(r, prefix+"/") {
			continue
		}
		id := next()
		out[id] = live.Clone()
		live.Assign(jsonschema.Ref(prefix + "/" + id))
	}
	return out
}
