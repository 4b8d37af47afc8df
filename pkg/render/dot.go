package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cliquechain/pkg/clique"
)

// ToDOT converts a configuration's clique graph to Graphviz DOT format.
// Every integer becomes a vertex and every pair of integers sharing a
// clique becomes an undirected edge, so each clique appears as a complete
// subgraph. Shared integers (membership count 2) are highlighted.
//
// The resulting DOT string can be rendered with the dot tool or with
// [RenderSVG].
func ToDOT(c clique.Configuration) string {
	membership := c.Membership()

	var buf bytes.Buffer
	buf.WriteString("graph cliques {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=\"SF Mono, Menlo, monospace\"];\n")
	buf.WriteString("\n")

	for pos := 1; pos <= c.MaxElement(); pos++ {
		if membership[pos] > 1 {
			fmt.Fprintf(&buf, "  %d [fillcolor=lightgrey];\n", pos)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", pos)
		}
	}

	buf.WriteString("\n")
	seen := make(map[[2]int]bool)
	for _, cl := range c.Cliques() {
		for i := 0; i < cl.Size(); i++ {
			for j := i + 1; j < cl.Size(); j++ {
				pair := [2]int{cl[i], cl[j]}
				if seen[pair] {
					continue
				}
				seen[pair] = true
				fmt.Fprintf(&buf, "  %d -- %d;\n", pair[0], pair[1])
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render SVG: %w", err)
	}
	return buf.Bytes(), nil
}
