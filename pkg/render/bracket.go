package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cliquechain/pkg/clique"
)

// bracketPalette cycles per clique so adjacent cliques stay visually
// distinct. The colors match the CLI palette in internal/cli.
var bracketPalette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("35")),  // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("36")),  // teal
	lipgloss.NewStyle().Foreground(lipgloss.Color("170")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // amber
	lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // soft red
	lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // white
	lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
}

// BracketOptions configures the bracket renderer.
type BracketOptions struct {
	// Colored wraps brackets in ANSI colors cycled per clique.
	// Plain output is used for tests and non-terminal writers.
	Colored bool
}

// Bracket renders a configuration on its number line. Every clique opens at
// its smallest member and closes at its largest; cliques that share a member
// with another clique are drawn with parentheses, exclusive cliques with
// square brackets:
//
//	{1}{2}{3}     →  [1] [2] [3]
//	{1 2}{3}      →  [1 2] [3]
//	{1 2}{2 3}    →  (1 (2) 3)
//
// The clique order is the configuration's canonical order, so output is
// deterministic for equal configurations.
func Bracket(c clique.Configuration, opts BracketOptions) string {
	cliques := c.Cliques()
	if len(cliques) == 0 {
		return ""
	}

	membership := c.Membership()
	overlaps := make([]bool, len(cliques))
	for i, cl := range cliques {
		for _, m := range cl {
			if membership[m] > 1 {
				overlaps[i] = true
				break
			}
		}
	}

	var b strings.Builder
	for pos := 1; pos <= c.MaxElement(); pos++ {
		if pos > 1 {
			b.WriteByte(' ')
		}
		for i, cl := range cliques {
			if cl.Min() == pos {
				b.WriteString(paint(i, bracketFor(overlaps[i], true), opts))
			}
		}
		b.WriteString(strconv.Itoa(pos))
		for i, cl := range cliques {
			if cl.Max() == pos {
				b.WriteString(paint(i, bracketFor(overlaps[i], false), opts))
			}
		}
	}
	return b.String()
}

// bracketFor picks the bracket character: parentheses for cliques that
// share a member with another clique, square brackets otherwise.
func bracketFor(overlapping, opening bool) string {
	switch {
	case overlapping && opening:
		return "("
	case overlapping:
		return ")"
	case opening:
		return "["
	default:
		return "]"
	}
}

func paint(cliqueIdx int, s string, opts BracketOptions) string {
	if !opts.Colored {
		return s
	}
	return bracketPalette[cliqueIdx%len(bracketPalette)].Render(s)
}
