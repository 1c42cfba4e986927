package typeschema

import (
	"github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/typesys"
)

// DefaultExclude is applied when no WithExclude option is given. It keeps the
// bundled platform typings out of the document; they are large and highly
// self-referential, and almost never what a schema consumer wants.
var DefaultExclude = []string{
	"**/typescript/lib/**",
	"**/@types/node/*",
}

// Option adjusts one Create call.
type Option func(*createOptions)

type createOptions struct {
	overrides  map[typesys.ID]jsonschema.Fragment
	exclude    []string
	excludeSet bool
	extra      map[string]any
}

func newCreateOptions(opts []Option) *createOptions {
	o := &createOptions{
		overrides: map[typesys.ID]jsonschema.Fragment{},
		extra:     map[string]any{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *createOptions) excludePatterns() []string {
	if o.excludeSet {
		return o.exclude
	}
	return DefaultExclude
}

// WithOverride maps a type, by identity, to a caller-supplied fragment. The
// override is returned verbatim wherever that type occurs, before any
// structural logic, which also makes it the escape hatch for types the
// builder cannot represent.
func WithOverride(t typesys.Type, f jsonschema.Fragment) Option {
	return func(o *createOptions) {
		if t != nil {
			o.overrides[t.ID()] = f
		}
	}
}

// WithExclude replaces the default exclusion globs. A type whose declaring
// file matches any pattern is omitted entirely. Calling WithExclude with no
// patterns disables exclusion.
func WithExclude(patterns ...string) Option {
	return func(o *createOptions) {
		o.excludeSet = true
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithExtra merges a key into the top-level output document. Extra keys take
// precedence over computed keys, except $defs.
func WithExtra(key string, value any) Option {
	return func(o *createOptions) {
		o.extra[key] = value
	}
}
