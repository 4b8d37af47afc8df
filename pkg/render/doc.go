// Package render turns finished clique configurations into human-readable
// output.
//
// Two renderers are provided:
//
//   - Bracket draws a configuration on the 1..n number line with colored
//     brackets, the format the cliquechain CLI prints
//   - ToDOT/RenderSVG export a configuration's clique graph (integers as
//     vertices, one edge per intra-clique pair) for Graphviz
//
// Both renderers are pure functions over a Configuration and never influence
// generation. They rely only on the exported clique API, so the core stays
// free of presentation concerns.
package render
