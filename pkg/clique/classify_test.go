package clique

import "testing"

func TestEndingCliqueSize(t *testing.T) {
	tests := []struct {
		name   string
		config Configuration
		n      int
		want   int
	}{
		{
			name:   "Singleton",
			config: New(NewClique(1, 2), NewClique(3)),
			n:      3,
			want:   1,
		},
		{
			name:   "FullRange",
			config: New(NewClique(1, 2, 3)),
			n:      3,
			want:   3,
		},
		{
			// 3 is in both {1 2 3} and {3 4}; canonical order reports the
			// clique with the smaller minimum element.
			name:   "SharedReportsFirst",
			config: New(NewClique(3, 4), NewClique(1, 2, 3)),
			n:      3,
			want:   3,
		},
		{
			name:   "AbsentSentinel",
			config: New(NewClique(1, 2)),
			n:      5,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EndingCliqueSize(tt.config, tt.n); got != tt.want {
				t.Errorf("EndingCliqueSize(%v, %d) = %d, want %d", tt.config, tt.n, got, tt.want)
			}
		})
	}
}

func TestEndingCliqueSizeInRange(t *testing.T) {
	for n := 1; n <= 7; n++ {
		configs, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		for _, c := range configs {
			size := EndingCliqueSize(c, n)
			if size < 1 || size > n {
				t.Errorf("EndingCliqueSize(%v, %d) = %d, want 1..%d", c, n, size, n)
			}

			// The reported size must belong to a clique that contains n.
			found := false
			for _, cl := range c.Cliques() {
				if cl.Contains(n) && cl.Size() == size {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("EndingCliqueSize(%v, %d) = %d matches no clique containing %d", c, n, size, n)
			}
		}
	}
}

func TestBreakdown(t *testing.T) {
	configs, err := Generate(3)
	if err != nil {
		t.Fatalf("Generate(3): %v", err)
	}

	got := Breakdown(configs, 3)
	want := map[int]int{1: 2, 2: 2, 3: 1}
	for size, count := range want {
		if got[size] != count {
			t.Errorf("Breakdown[%d] = %d, want %d", size, got[size], count)
		}
	}
	if len(got) != len(want) {
		t.Errorf("Breakdown = %v, want %v", got, want)
	}
}
