package clique

import (
	"slices"
	"strconv"
	"strings"
)

// Clique is a set of positive integers, stored sorted and deduplicated.
// The zero value is an empty clique. Use NewClique or Range to build one;
// code that constructs a Clique literal must keep it sorted and free of
// duplicates itself.
type Clique []int

// NewClique builds a clique from the given members. Duplicates are dropped
// and the result is sorted, so member order does not matter.
func NewClique(members ...int) Clique {
	out := make(Clique, 0, len(members))
	seen := make(map[int]struct{}, len(members))
	for _, m := range members {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// Range returns the contiguous clique {lo, lo+1, ..., hi}.
// It returns an empty clique when lo > hi.
func Range(lo, hi int) Clique {
	if lo > hi {
		return Clique{}
	}
	out := make(Clique, 0, hi-lo+1)
	for m := lo; m <= hi; m++ {
		out = append(out, m)
	}
	return out
}

// Size returns the number of members.
func (c Clique) Size() int { return len(c) }

// Min returns the smallest member, or 0 for an empty clique.
func (c Clique) Min() int {
	if len(c) == 0 {
		return 0
	}
	return c[0]
}

// Max returns the largest member, or 0 for an empty clique.
func (c Clique) Max() int {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

// Contains reports whether n is a member.
func (c Clique) Contains(n int) bool {
	_, ok := slices.BinarySearch(c, n)
	return ok
}

// Equal reports whether both cliques have the same members.
func (c Clique) Equal(other Clique) bool {
	return slices.Equal(c, other)
}

// ProperSubsetOf reports whether every member of c is in other and other is
// strictly larger. Equal cliques are not proper subsets of each other.
func (c Clique) ProperSubsetOf(other Clique) bool {
	if len(c) >= len(other) {
		return false
	}
	for _, m := range c {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

// String renders the clique as "{1 2 3}".
func (c Clique) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(m))
	}
	b.WriteByte('}')
	return b.String()
}

// compareCliques orders cliques by smallest member, then by size, then
// lexicographically. This is the canonical clique order used inside
// Configuration, so iteration over a configuration's cliques is stable.
func compareCliques(a, b Clique) int {
	if c := a.Min() - b.Min(); c != 0 {
		return c
	}
	if c := len(a) - len(b); c != 0 {
		return c
	}
	return slices.Compare(a, b)
}
