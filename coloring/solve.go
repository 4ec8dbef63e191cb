// Package coloring - unified entry point and the branch-and-bound driver.
//
// Solve is the canonical API: validate inputs, seed the bounds, run the
// depth-first search for the selected strategy, and report the result with
// its certificates and statistics.
//
// Design principles:
//   - Deterministic: identical graph + options + deadline ⇒ identical tree.
//   - Strict sentinels: only errors from types.go and the graph package.
//   - Ownership: the graph and the returned coloring are the caller's; all
//     search buffers are solve-local and released on every exit path.
package coloring

import (
	"fmt"
	"time"

	"github.com/katalvlaran/chromatic/colorset"
	"github.com/katalvlaran/chromatic/graph"
)

// Solve computes χ(G) for the simple undirected graph g.
//
// Contracts:
//   - g must be non-nil and satisfy the full CSR contract (sorted mirrored
//     loop-free adjacency); violations fail fast with no coloring.
//   - opts.Deadline must be positive; DefaultOptions supplies a day.
//   - n == 0 returns K=0, an empty coloring and Optimal=true immediately.
//
// Result semantics:
//   - Colors is always a proper coloring using exactly K colors (provided
//     n > 0 and no error), even on timeout.
//   - Optimal is true iff the search finished without timeout: either the
//     bounds met, or the tree was exhausted — exhaustion under the
//     one-beyond-k branching cap is itself a proof that no coloring with
//     fewer than K colors exists.
//
// Errors: ErrNonPositiveDeadline, ErrUnknownStrategy, ErrTooManyColors,
// and graph sentinels wrapped as "coloring: invalid graph: …".
//
// Complexity: exponential worst case (exact search); see the package doc.
func Solve(g *graph.CSR, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return solve(g, o)
}

// SolveWithOptions is Solve for callers that build an Options value
// directly (e.g. table-driven experiments); identical semantics.
func SolveWithOptions(g *graph.CSR, o Options) (Result, error) {
	return solve(g, o)
}

func solve(g *graph.CSR, o Options) (Result, error) {
	// Stage 1: validation.
	if g == nil {
		return Result{}, graph.ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return Result{}, fmt.Errorf("coloring: invalid graph: %w", err)
	}
	if o.Deadline <= 0 {
		return Result{}, ErrNonPositiveDeadline
	}
	switch o.Strategy {
	case ClassicDSATUR, SewellDSATUR, FuriniDSATUR:
		// ok
	default:
		return Result{}, ErrUnknownStrategy
	}

	// Stage 2: trivial instance.
	if g.N == 0 {
		return Result{
			K:       0,
			Colors:  []int{},
			Optimal: true,
		}, nil
	}

	// Stage 3: state and bound seeding.
	s := newBBState(g, o)
	s.lb = greedyClique(g)

	ub0, seed, err := dsatur(g)
	if err != nil {
		return Result{}, err
	}
	if ub0 > colorset.MaxColors {
		// The engine refuses to branch on color indices ≥ 63, and a seed of
		// 64+ colors leaves it nothing to improve within the ColorSet width.
		return Result{}, ErrTooManyColors
	}
	s.ub = ub0
	copy(s.best, seed)

	// Stage 4: search. A seed meeting the clique bound is already optimal.
	if s.lb < s.ub {
		s.explore(0, 0)
	}

	return Result{
		K:         s.ub,
		Colors:    s.best,
		LB:        s.lb,
		InitialUB: ub0,
		Optimal:   !s.timedOut,
		Nodes:     s.nodes,
		Cuts:      s.cuts,
		Elapsed:   time.Since(s.started),
		TimedOut:  s.timedOut,
	}, nil
}

// explore is the recursive branch-and-bound core. nbCol is the number of
// colored vertices, k the number of color classes in use (1 + max color
// assigned, 0 if none). Every assign on the way down is matched by an
// unassign on the way up, so the state is bit-identical across the pair.
func (s *bbState) explore(nbCol, k int) {
	if s.deadlineExpired() {
		s.timedOut = true
		return
	}

	s.nodes++
	s.maybeProgress()

	// Leaf: complete assignment.
	if nbCol == s.g.N {
		if k < s.ub {
			s.recordIncumbent(k)
		}
		return
	}

	// Standard pruning: any completion from here uses ≥ UB colors.
	if k >= s.ub {
		s.cuts++
		return
	}

	// Furini: per-node reduced-graph lower bound.
	if s.strategy == FuriniDSATUR && s.reducedBound(k) >= s.ub {
		s.cuts++
		return
	}

	v := s.pickVertex()
	if v == -1 {
		return
	}

	// Color ceiling: at most one beyond the classes in use (unused labels
	// are interchangeable), and never a color that cannot beat UB.
	cLimit := k + 1
	if s.ub-1 < cLimit {
		cLimit = s.ub - 1
	}

	var newK int
	for c := 0; c < cLimit; c++ {
		if s.forbidden[v].Has(c) {
			continue
		}
		newK = k
		if c+1 > newK {
			newK = c + 1
		}
		if newK >= s.ub {
			continue
		}

		s.assign(v, c)
		s.explore(nbCol+1, newK)
		s.unassign(v, c)

		if s.timedOut || s.ub == s.lb {
			return
		}
	}
}
