package builder

import (
	"regexp"

	json "github.com/goccy/go-json"

	"github.com/reoring/typeschema/jsonschema"
)

var defRefPattern = regexp.MustCompile(`"#/\$defs/([^"]+)"`)

// Prune drops $defs entries not reachable from the serialized document. A
// fragment can be promoted during traversal and still end up orphaned when
// its only embedding parent was itself discarded, so the reachable set is
// recomputed from the final text in one scan.
func Prune(doc jsonschema.Document) jsonschema.Document {
	defs, ok := doc["$defs"].(map[string]any)
	if !ok || len(defs) == 0 {
		return doc
	}
	raw, err := json.Marshal(map[string]any(doc))
	if err != nil {
		return doc
	}
	keep := map[string]struct{}{}
	for _, m := range defRefPattern.FindAllSubmatch(raw, -1) {
		keep[string(m[1])] = struct{}{}
	}
	for id := range defs {
		if _, used := keep[id]; !used {
			delete(defs, id)
		}
	}
	return doc
}
