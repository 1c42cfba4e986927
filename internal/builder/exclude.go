package builder

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/reoring/typeschema/typesys"
)

// ExclusionFilter drops types declared in files matching any of its glob
// patterns. Patterns use doublestar syntax, so "**" spans directories.
type ExclusionFilter struct {
	patterns []string
}

// NewExclusionFilter compiles the pattern list. An empty list excludes
// nothing.
func NewExclusionFilter(patterns []string) *ExclusionFilter {
	return &ExclusionFilter{patterns: patterns}
}

// Excluded reports whether any declaring file of t matches a pattern.
func (x *ExclusionFilter) Excluded(t typesys.Type) bool {
	if len(x.patterns) == 0 {
		return false
	}
	for _, file := range t.DeclaringFiles() {
		name := filepath.ToSlash(file)
		for _, pattern := range x.patterns {
			if ok, err := doublestar.Match(pattern, name); err == nil && ok {
				return true
			}
		}
	}
	return false
}
