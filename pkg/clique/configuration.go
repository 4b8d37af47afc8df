package clique

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Configuration is an unordered collection of cliques. It is an immutable
// value: constructors copy their inputs, and transformations such as
// WithoutSubsets return a new Configuration.
//
// Equality is defined on the unordered set of cliques. Two configurations
// built from the same cliques in different order, or with duplicate clique
// representations, compare equal and share the same Key.
type Configuration struct {
	cliques []Clique // canonical order, see compareCliques
	key     string
}

// New builds a configuration from the given cliques. Each clique is copied,
// so callers may keep mutating their slices. The cliques are stored in
// canonical order (smallest member first).
func New(cliques ...Clique) Configuration {
	owned := make([]Clique, len(cliques))
	for i, c := range cliques {
		owned[i] = NewClique(c...)
	}
	slices.SortFunc(owned, compareCliques)
	return Configuration{cliques: owned, key: canonicalKey(owned)}
}

// canonicalKey serializes the cliques into a string that is identical for
// equal configurations. Duplicate clique representations collapse to one
// entry so that key equality matches set-of-sets equality.
func canonicalKey(sorted []Clique) string {
	var b strings.Builder
	var prev Clique
	for i, c := range sorted {
		if i > 0 && c.Equal(prev) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		for j, m := range c {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(m))
		}
		prev = c
	}
	return b.String()
}

// Key returns the canonical identity of the configuration. Configurations
// with the same clique-set have the same key regardless of construction
// order, which makes the key usable for deduplication and cache lookups.
func (c Configuration) Key() string { return c.key }

// Equal reports whether both configurations contain the same set of cliques.
func (c Configuration) Equal(other Configuration) bool {
	return c.key == other.key
}

// Len returns the number of cliques.
func (c Configuration) Len() int { return len(c.cliques) }

// Cliques returns the cliques in canonical order. The returned slice is a
// copy; mutating it does not affect the configuration.
func (c Configuration) Cliques() []Clique {
	out := make([]Clique, len(c.cliques))
	for i, cl := range c.cliques {
		out[i] = slices.Clone(cl)
	}
	return out
}

// MaxElement returns the largest integer appearing in any clique, or 0 for
// an empty configuration.
func (c Configuration) MaxElement() int {
	max := 0
	for _, cl := range c.cliques {
		if cl.Max() > max {
			max = cl.Max()
		}
	}
	return max
}

// Membership returns, for each integer occurring in the configuration, the
// number of cliques containing it.
func (c Configuration) Membership() map[int]int {
	counts := make(map[int]int)
	for _, cl := range c.cliques {
		for _, m := range cl {
			counts[m]++
		}
	}
	return counts
}

// IsValid reports whether every integer in the configuration belongs to
// exactly one or two cliques.
func (c Configuration) IsValid() bool {
	for _, n := range c.Membership() {
		if n < 1 || n > 2 {
			return false
		}
	}
	return true
}

// WithoutSubsets returns a configuration containing only the cliques that
// are not proper subsets of another clique in c. Equal cliques survive; only
// strictly smaller ones are absorbed. The check is pairwise, O(k²) in the
// number of cliques.
func (c Configuration) WithoutSubsets() Configuration {
	kept := make([]Clique, 0, len(c.cliques))
	for i, a := range c.cliques {
		absorbed := false
		for j, b := range c.cliques {
			if i != j && a.ProperSubsetOf(b) {
				absorbed = true
				break
			}
		}
		if !absorbed {
			kept = append(kept, a)
		}
	}
	return New(kept...)
}

// String renders the configuration as "{1 2}{2 3}".
func (c Configuration) String() string {
	var b strings.Builder
	for _, cl := range c.cliques {
		b.WriteString(cl.String())
	}
	return b.String()
}

// MarshalJSON encodes the configuration as a JSON array of sorted integer
// arrays, e.g. [[1,2],[2,3]]. The canonical clique order is preserved so the
// encoding is deterministic.
func (c Configuration) MarshalJSON() ([]byte, error) {
	out := make([][]int, len(c.cliques))
	for i, cl := range c.cliques {
		out[i] = cl
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the array-of-arrays form produced by MarshalJSON.
// Clique order and member order in the input are irrelevant.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	var raw [][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	cliques := make([]Clique, len(raw))
	for i, members := range raw {
		cliques[i] = NewClique(members...)
	}
	*c = New(cliques...)
	return nil
}
