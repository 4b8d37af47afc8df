// Package clique enumerates clique configurations over the integers 1..n.
//
// A configuration is an unordered collection of cliques (sets of positive
// integers) in which every integer belongs to exactly one or two cliques and
// no clique is a proper subset of another. Configurations are not arbitrary
// covers: they are built by a recursive extension rule that only ever adds a
// singleton {n} or a contiguous range {i..n}, so the only overlaps that can
// occur are between consecutively numbered integers.
//
// The package provides three things:
//
//   - Configuration, an immutable value type with set-of-sets equality
//   - Generate, which produces the complete deduplicated set of valid
//     configurations for a given n
//   - EndingCliqueSize, which classifies a configuration by the size of the
//     clique containing its largest element
//
// Counts follow the recurrence a(n+1) = 3·a(n) − 1 with a(1) = 1, which the
// cliquechain CLI verifies against observed results.
//
// # Example
//
//	configs, err := clique.Generate(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range configs {
//	    fmt.Println(c) // e.g. {1 2}{2 3}
//	}
package clique
