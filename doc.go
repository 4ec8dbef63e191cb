// Package chromatic computes the chromatic number χ(G) of simple
// undirected graphs, exactly, with a machine-checkable optimality proof.
//
// 🚀 What is chromatic?
//
//	A deterministic, dependency-light library built around one hard core:
//	an exact DSATUR branch-and-bound coloring engine in three flavors:
//		• Classic — DSATUR selection (max saturation, then max degree)
//		• Sewell  — DSATUR + shared-color-options tie-breaking (Sewell 1996)
//		• Furini  — per-node reduced-graph lower bounds (Furini et al. 2017)
//
// ✨ Why choose chromatic?
//
//   - Exact answers – proper colorings with the minimum number of colors,
//     plus lower/upper bound certificates and search statistics
//   - Predictable – single-threaded depth-first search, cooperative
//     wall-clock deadlines, no hidden randomness
//   - Pure Go – no cgo, no runtime deps; the caller owns the graph memory
//
// Everything is organized under four subpackages:
//
//	colorset/ — 64-bit color-index sets (the engine's working currency)
//	graph/    — borrowed CSR views of simple undirected graphs
//	coloring/ — heuristic bounds (greedy clique, DSATUR) & the exact engine
//	builder/  — deterministic benchmark-style instance generators
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╳ │        K4 needs exactly 4 colors;
//	    2───3        an odd cycle needs exactly 3.
//
// The engine targets the DIMACS benchmark regime: graphs up to a few
// thousand vertices whose optimum lies below 64 colors.
//
//	go get github.com/katalvlaran/chromatic
package chromatic
