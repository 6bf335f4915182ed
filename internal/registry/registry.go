// Package registry manages the named subfield heuristics a tree builder can use.
package registry

import (
	"maps"
	"slices"

	"github.com/simonhull/boxtree/internal/binary"
	"github.com/simonhull/boxtree/internal/types"
)

// Predicate decides whether the head of a view plausibly starts a nested record.
// Callers only invoke a Predicate on views holding more than a record header.
type Predicate func(v binary.View) bool

// predicates maps heuristic names to their predicates.
var predicates = make(map[string]Predicate)

// Register registers a predicate under name, replacing any previous one.
// This is called by heuristic packages during initialization (init functions).
func Register(name string, p Predicate) {
	predicates[name] = p
}

// Get returns the predicate registered under name.
// Returns nil if nothing is registered under that name.
func Get(name string) Predicate {
	return predicates[name]
}

// Lookup is like Get but reports a missing name as an UnknownHeuristicError.
func Lookup(name string) (Predicate, error) {
	p := predicates[name]
	if p == nil {
		return nil, &types.UnknownHeuristicError{Name: name}
	}
	return p, nil
}

// Names returns the registered heuristic names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(predicates))
}
