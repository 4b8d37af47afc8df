package render

import (
	"testing"

	"github.com/matzehuels/cliquechain/pkg/clique"
)

func TestBracketPlain(t *testing.T) {
	tests := []struct {
		name   string
		config clique.Configuration
		want   string
	}{
		{
			name:   "Empty",
			config: clique.New(),
			want:   "",
		},
		{
			name:   "Singletons",
			config: clique.New(clique.NewClique(1), clique.NewClique(2), clique.NewClique(3)),
			want:   "[1] [2] [3]",
		},
		{
			name:   "PairAndSingleton",
			config: clique.New(clique.NewClique(1, 2), clique.NewClique(3)),
			want:   "[1 2] [3]",
		},
		{
			name:   "FullRange",
			config: clique.New(clique.NewClique(1, 2, 3)),
			want:   "[1 2 3]",
		},
		{
			name:   "Overlapping",
			config: clique.New(clique.NewClique(1, 2), clique.NewClique(2, 3)),
			want:   "(1 (2) 3)",
		},
		{
			name: "MixedOverlap",
			config: clique.New(
				clique.NewClique(1),
				clique.NewClique(2, 3),
				clique.NewClique(3, 4),
			),
			want: "[1] (2 (3) 4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bracket(tt.config, BracketOptions{Colored: false})
			if got != tt.want {
				t.Errorf("Bracket(%v) = %q, want %q", tt.config, got, tt.want)
			}
		})
	}
}

func TestBracketDeterministic(t *testing.T) {
	// Equal configurations built in different clique order must render
	// identically: the renderer follows canonical order, not input order.
	a := clique.New(clique.NewClique(2, 3), clique.NewClique(1, 2))
	b := clique.New(clique.NewClique(1, 2), clique.NewClique(2, 3))

	gotA := Bracket(a, BracketOptions{})
	gotB := Bracket(b, BracketOptions{})
	if gotA != gotB {
		t.Errorf("Bracket order-dependent: %q vs %q", gotA, gotB)
	}
}

func TestBracketGeneratedConfigs(t *testing.T) {
	// Every generated configuration must render with balanced brackets.
	configs, err := clique.Generate(5)
	if err != nil {
		t.Fatalf("Generate(5): %v", err)
	}
	for _, c := range configs {
		out := Bracket(c, BracketOptions{})
		depth := 0
		for _, r := range out {
			switch r {
			case '[', '(':
				depth++
			case ']', ')':
				depth--
			}
			if depth < 0 {
				t.Errorf("Bracket(%v) = %q closes before opening", c, out)
				break
			}
		}
		if depth != 0 {
			t.Errorf("Bracket(%v) = %q has unbalanced brackets", c, out)
		}
	}
}
