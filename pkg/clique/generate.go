package clique

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNonPositive is returned by Generate when n is smaller than 1.
	ErrNonPositive = errors.New("n must be at least 1")

	// ErrInvariant is returned by Generate when an accepted configuration
	// violates the membership invariant (an integer in 1..n belonging to
	// zero or more than two cliques). This indicates a defect in the
	// generator, not a recoverable runtime condition.
	ErrInvariant = errors.New("membership invariant violated")
)

// Generate returns every valid clique configuration over 1..n, deduplicated
// and sorted by canonical key so the order is reproducible across runs.
//
// Configurations for n are built from the complete result set for n−1 by
// extending each parent in exactly n ways: appending the singleton {n}, or
// appending the contiguous range {i..n} for each i from n−1 down to 1. Each
// candidate has subset cliques removed (a new range clique absorbs any
// parent clique it covers), the candidate pool is deduplicated under
// set-of-sets equality, and only configurations in which every integer
// belongs to one or two cliques are kept.
//
// Generate is a pure function of n. It returns ErrNonPositive for n < 1.
func Generate(n int) ([]Configuration, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositive, n)
	}

	configs := []Configuration{New(NewClique(1))}
	for m := 2; m <= n; m++ {
		configs = extend(configs, m)
	}

	for _, c := range configs {
		if err := checkInvariant(c, n); err != nil {
			return nil, err
		}
	}
	return configs, nil
}

// extend produces the configurations for m from the complete set for m−1.
func extend(parents []Configuration, m int) []Configuration {
	pool := make(map[string]Configuration)
	for _, parent := range parents {
		base := parent.cliques

		// Close off m in a clique of its own.
		add(pool, withClique(base, NewClique(m)))

		// Extend backwards: one candidate per starting point i, covering
		// the contiguous range [i, m].
		for i := m - 1; i >= 1; i-- {
			add(pool, withClique(base, Range(i, m)))
		}
	}

	out := make([]Configuration, 0, len(pool))
	for _, c := range pool {
		if c.IsValid() {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Configuration) int {
		return strings.Compare(a.key, b.key)
	})
	return out
}

// withClique builds a candidate from the parent's cliques plus one new
// clique and collapses any clique the new one absorbed.
func withClique(base []Clique, extra Clique) Configuration {
	cliques := make([]Clique, 0, len(base)+1)
	cliques = append(cliques, base...)
	cliques = append(cliques, extra)
	return New(cliques...).WithoutSubsets()
}

func add(pool map[string]Configuration, c Configuration) {
	pool[c.Key()] = c
}

// checkInvariant verifies that every integer 1..n is present with a
// membership count of one or two. Extension candidates are filtered by
// IsValid before acceptance, so a failure here means the generator itself
// is broken.
func checkInvariant(c Configuration, n int) error {
	counts := c.Membership()
	if len(counts) != n {
		return fmt.Errorf("%w: configuration %s covers %d of %d integers",
			ErrInvariant, c, len(counts), n)
	}
	for m, count := range counts {
		if count < 1 || count > 2 {
			return fmt.Errorf("%w: integer %d appears in %d cliques of %s",
				ErrInvariant, m, count, c)
		}
	}
	return nil
}
