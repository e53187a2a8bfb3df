package domain

import (
	"maps"
	"slices"
)

// Set is an unordered collection of unique strings.
type Set map[string]struct{}

// NewSet creates a Set holding the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	s.Add(items...)
	return s
}

// Add inserts the given items.
func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Remove deletes the given items.
func (s Set) Remove(items ...string) {
	for _, item := range items {
		delete(s, item)
	}
}

// Has reports whether item is a member of the set.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Union returns a new set holding the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// Difference returns a new set holding the members of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for item := range s {
		if !other.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Intersect returns a new set holding the members present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for item := range s {
		if other.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Clone returns a shallow copy of the set.
func (s Set) Clone() Set {
	return maps.Clone(s)
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
