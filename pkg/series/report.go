// Package series runs clique enumeration across a range of n and tabulates
// the results.
//
// The package sits between the pure core in pkg/clique and the consumers
// (CLI, HTTP API): it adds caching of generated configuration sets, builds
// per-n breakdowns by ending clique size, and verifies the closed-form
// recurrence a(n+1) = 3·a(n) − 1 against observed counts.
package series

import (
	"sort"
	"time"
)

// SizeCount is one histogram cell: how many configurations end in a clique
// of the given size.
type SizeCount struct {
	Size  int `json:"size" bson:"size"`
	Count int `json:"count" bson:"count"`
}

// Row is the sweep result for one value of n.
type Row struct {
	N     int `json:"n" bson:"n"`
	Count int `json:"count" bson:"count"`

	// Breakdown lists configuration counts by ending clique size, in
	// ascending size order. Sizes with zero configurations are omitted.
	Breakdown []SizeCount `json:"breakdown" bson:"breakdown"`

	// Expected is 3·a(n−1) − 1, the count the recurrence predicts.
	// It is zero for n = 1, which has no predecessor.
	Expected int `json:"expected,omitempty" bson:"expected,omitempty"`

	// RecurrenceOK reports whether Count matches Expected. Always true
	// for n = 1.
	RecurrenceOK bool `json:"recurrence_ok" bson:"recurrence_ok"`
}

// Report is the result of a sweep over n = 1..Max.
type Report struct {
	ID          string    `json:"id" bson:"_id"`
	Max         int       `json:"max" bson:"max"`
	Rows        []Row     `json:"rows" bson:"rows"`
	GeneratedAt time.Time `json:"generated_at" bson:"generated_at"`
}

// Verified reports whether every row satisfied the recurrence.
func (r *Report) Verified() bool {
	for _, row := range r.Rows {
		if !row.RecurrenceOK {
			return false
		}
	}
	return true
}

// WidestCount returns the largest breakdown cell count across all rows.
// The CLI uses it to pad count columns consistently over the whole table.
func (r *Report) WidestCount() int {
	widest := 0
	for _, row := range r.Rows {
		for _, sc := range row.Breakdown {
			if sc.Count > widest {
				widest = sc.Count
			}
		}
	}
	return widest
}

// breakdownRow converts a size histogram into sorted cells.
func breakdownRow(counts map[int]int) []SizeCount {
	out := make([]SizeCount, 0, len(counts))
	for size, count := range counts {
		out = append(out, SizeCount{Size: size, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	return out
}
