// Package coloring — exact chromatic-number computation via DSATUR
// branch-and-bound, with heuristic bound providers.
//
// Solve explores partial colorings depth-first. At every node the state
// carries, for each vertex, the set of colors its colored neighbors already
// use (the "forbidden" set) and its saturation degree (the cardinality of
// that set); both are maintained incrementally by the assign/unassign
// mutator pair and are never recomputed during descent.
//
// Rationale (succinct):
//  1. Bounds are seeded once: a degree-ordered greedy clique gives the
//     global lower bound LB, and the DSATUR heuristic gives the initial
//     upper bound UB plus a feasible incumbent coloring.
//  2. Branching is capped at one color beyond those currently in use
//     (c ≤ k). Unused color labels are interchangeable, so this removes
//     permutation symmetry from the tree — a search-space invariant, not a
//     heuristic.
//  3. A node with k ≥ UB classes cannot complete in fewer than UB colors
//     and is cut. The Furini strategy additionally recomputes a lower bound
//     at every node from a reduced graph over used color classes plus
//     uncolored vertices, and cuts when it reaches UB.
//  4. The search stops early the moment UB meets LB; otherwise exhaustion
//     of the tree itself proves the incumbent optimal.
//  5. Soft wall-clock budget: the deadline is tested on every node entry;
//     on expiry the recursion unwinds and the best coloring found so far is
//     returned with Optimal=false.
//
// Strategies (Options.Strategy):
//
//	ClassicDSATUR — select max-saturation vertex, ties by max degree.
//	SewellDSATUR  — classic selection plus a third tie-break level that
//	                maximizes shared remaining-color options with uncolored
//	                neighbors (Sewell 1996). Falls back to classic when
//	                UB ≥ 63, where the option mask no longer fits.
//	FuriniDSATUR  — classic selection plus the per-node reduced-graph
//	                lower bound (Furini, Gabrel & Ternier 2017).
//
// Complexity:
//   - Worst case exponential in n (exact search); practical speed comes
//     from the bounds and the symmetry cap.
//   - Per node: O(n) selection, O(deg²) per assign/unassign pair, and for
//     the Furini strategy an O(k·nu/64·k + (k+nu)²·deg) bound recomputation
//     over preallocated scratch.
//   - Memory: O(n) state + O(n·MaxColors/8) bytes of reduced-bound scratch
//     (Furini only), all acquired at solve entry.
//
// The engine is single-threaded and deterministic: identical graph, options
// and deadline produce identical statistics. Distinct solves share no state
// and may run in parallel.
package coloring
