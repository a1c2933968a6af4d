package mapping

import (
	"slices"

	"github.com/matzehuels/bls2brs/pkg/bls"
)

// Version identifies the revision of the rule table. It is part of every
// conversion cache key, so it must change whenever a rule's output does.
const Version = "1"

// Map returns the target bricks for a source brick with the given UI name.
//
// Exact names are looked up first and return a fresh copy of the literal
// mapping. Otherwise the pattern rules are tried in order and the first one
// whose pattern matches decides, even when its generator rejects the name.
// The second result is false when the brick has no mapping.
//
// Only the print name of from is consulted, and only by printed bricks.
func Map(uiName string, from bls.Brick) (Mapping, bool) {
	if m, ok := literals[uiName]; ok {
		return m.Clone(), true
	}
	for _, r := range rules {
		loc := r.re.FindStringSubmatchIndex(uiName)
		if loc == nil {
			continue
		}
		return r.gen(match{name: uiName, loc: loc}, from)
	}
	return nil, false
}

// LiteralNames returns the UI names with an exact mapping, sorted.
func LiteralNames() []string {
	names := make([]string, 0, len(literals))
	for name := range literals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Patterns returns the pattern rule expressions in priority order.
func Patterns() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.re.String()
	}
	return out
}
