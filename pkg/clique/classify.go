package clique

// EndingCliqueSize returns the size of the clique containing n.
//
// In a valid configuration n belongs to one or two cliques. When it belongs
// to two, the scan reports the first clique in canonical order, which is the
// one with the smaller minimum element. This makes the classification
// deterministic regardless of how the configuration was built. If n is in no
// clique (which cannot happen for configurations produced by Generate), the
// result is 0.
func EndingCliqueSize(c Configuration, n int) int {
	for _, cl := range c.cliques {
		if cl.Contains(n) {
			return cl.Size()
		}
	}
	return 0
}

// Breakdown counts the configurations in configs grouped by their ending
// clique size for n. The result maps size to count; sizes with no
// configurations are absent.
func Breakdown(configs []Configuration, n int) map[int]int {
	counts := make(map[int]int)
	for _, c := range configs {
		counts[EndingCliqueSize(c, n)]++
	}
	return counts
}
