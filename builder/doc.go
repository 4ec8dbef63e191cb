// Package builder constructs deterministic CSR graph instances for tests,
// benchmarks and experiments with the coloring engine.
//
// Design contract (strict):
//   - Every factory returns a validated *graph.CSR or a sentinel error;
//     no panics at runtime.
//   - Determinism: same arguments (and seed, where applicable) ⇒ identical
//     graphs. RandomSparse derives its stream from the seed alone; seed 0
//     maps to a fixed default, never to the clock.
//   - Known optima: each factory's doc states χ of the produced family, so
//     test expectations stay next to the construction.
//
// The families mirror the DIMACS benchmark regime the engine targets:
// complete graphs, cycles, stars, bipartite blocks, the Petersen graph,
// queen graphs (queen5_5 & friends) and DSJC-style sparse random graphs.
package builder
