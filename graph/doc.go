// Package graph provides the borrowed CSR (compressed-sparse-row) view of a
// simple undirected graph that the coloring engine consumes.
//
// A CSR stores the vertex set {0..N-1} as three parallel arrays:
//
//	Adj   — all neighbor lists concatenated, each sorted ascending
//	Start — Start[v] is the offset of v's neighbor list inside Adj
//	Deg   — Deg[v] is the length of v's neighbor list
//
// The view is borrowed: solvers never mutate it and never free it; the
// caller owns the memory for the lifetime of the solve. Two solves may run
// concurrently against the same CSR.
//
// Input contract (checked by Validate, relied upon everywhere else):
//
//   - every neighbor list is strictly ascending (no duplicates),
//   - every edge {u,v} appears in both endpoints' lists,
//   - no self-loops,
//   - Start/Deg offsets are canonical and consistent with len(Adj).
//
// NewCSR builds a canonical view from a plain edge list for callers that do
// not already hold CSR data. Parsing graph files is out of scope by design;
// ingest lives with the caller.
package graph
