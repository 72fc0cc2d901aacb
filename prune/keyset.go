package prune

import (
	"maps"
	"slices"
)

// KeySet is a duplicate-free set of table keys (agency, route or trip ids).
// A reducer fills it once; downstream stages only test membership.
type KeySet map[string]struct{}

// NewKeySet returns a set holding keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Add(key string) { s[key] = struct{}{} }

// Contains reports whether key is in the set. Matching is exact: no case
// folding or trimming. A nil set contains nothing.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int { return len(s) }

// Sorted returns the keys in lexical order.
func (s KeySet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
