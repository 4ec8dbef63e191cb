// Package coloring - branch-and-bound search state and the incremental
// mutator that keeps it truthful.
//
// The invariants maintained here are the ones every selector and bound
// relies on at node entry:
//
//	color[v] == uncolored  ⟹  forbidden[v] == { color[u] : u ∈ N(v), colored }
//	dsat[v]  == forbidden[v].Count()
//
// assign/unassign are exact inverses; the driver pairs them LIFO across the
// recursion, so the state after any matched pair is bit-identical to the
// state before it.
package coloring

import (
	"time"

	"github.com/katalvlaran/chromatic/colorset"
	"github.com/katalvlaran/chromatic/graph"
)

// uncolored marks a vertex without an assigned color.
const uncolored = -1

// bbState holds all per-solve search data. A dedicated engine struct
// (instead of closures over locals) keeps dependencies explicit, testing
// simpler, and hot-path state predictable. Nothing here is shared between
// solves.
type bbState struct {
	// Graph (borrowed; never mutated).
	g *graph.CSR

	// Policy.
	strategy Strategy

	// Per-vertex search state.
	color     []int          // current partial coloring; uncolored == -1
	forbidden []colorset.Set // colors used by ≥1 colored neighbor
	dsat      []int          // saturation degree == forbidden[v].Count()

	// Bounds and incumbent.
	ub   int   // current best number of colors (monotone non-increasing)
	lb   int   // global greedy-clique lower bound (set once)
	best []int // complete proper coloring using exactly ub colors

	// Stats.
	nodes int64
	cuts  int64

	// Time budget.
	started  time.Time
	deadline time.Duration
	timedOut bool

	// Callback.
	progress ProgressFunc

	// Scratch, acquired once at solve entry and reused across nodes.
	cands   []int          // Sewell candidate list (grows on demand)
	reduced reducedScratch // Furini bound working set
}

// newBBState allocates the per-solve state for graph g. All buffers live
// for the whole solve and are released together when the state goes out of
// scope; the graph and the returned coloring are the only memory the caller
// sees.
func newBBState(g *graph.CSR, opts Options) *bbState {
	n := g.N
	s := &bbState{
		g:         g,
		strategy:  opts.Strategy,
		color:     make([]int, n),
		forbidden: make([]colorset.Set, n),
		dsat:      make([]int, n),
		best:      make([]int, n),
		started:   time.Now(),
		deadline:  opts.Deadline,
		progress:  opts.Progress,
	}
	for v := range s.color {
		s.color[v] = uncolored
	}
	if opts.Strategy == FuriniDSATUR {
		s.reduced.init(n)
	}

	return s
}

// deadlineExpired tests the wall-clock budget. Called at the top of every
// recursive entry; on expiry the caller sets nothing else and unwinds.
func (s *bbState) deadlineExpired() bool {
	return time.Since(s.started) > s.deadline
}

// maybeProgress fires the observational callback on the first visited node
// and every progressInterval-th thereafter. The engine never re-enters
// itself from the callback.
func (s *bbState) maybeProgress() {
	if s.progress == nil {
		return
	}
	if s.nodes == 1 || s.nodes%progressInterval == 0 {
		s.progress(s.nodes, s.ub, s.lb, time.Since(s.started), s.cuts)
	}
}

// assign colors v with c and folds c into every uncolored neighbor's
// forbidden set, bumping its saturation when c is new there.
//
// Contract: color[v] == uncolored, c ∉ forbidden[v], 0 ≤ c < colorset.MaxColors.
//
// Complexity: O(deg(v)).
func (s *bbState) assign(v, c int) {
	s.color[v] = c
	for _, w := range s.g.Neighbors(v) {
		if s.color[w] != uncolored {
			continue
		}
		if !s.forbidden[w].Has(c) {
			s.forbidden[w].Add(c)
			s.dsat[w]++
		}
	}
}

// unassign is the exact inverse of assign(v, c). For each uncolored
// neighbor w that currently forbids c, the color is dropped only when no
// *other* colored neighbor of w still carries it — forbidden sets are a
// union over colored neighbors, not a multiset, so the membership test has
// to rescan w's neighborhood.
//
// Complexity: O(deg(v) · degmax). Accepted; correctness over speed.
func (s *bbState) unassign(v, c int) {
	s.color[v] = uncolored
	for _, w := range s.g.Neighbors(v) {
		if s.color[w] != uncolored {
			continue
		}
		if !s.forbidden[w].Has(c) {
			continue
		}
		still := false
		for _, x := range s.g.Neighbors(w) {
			if x != v && s.color[x] == c {
				still = true
				break
			}
		}
		if !still {
			s.forbidden[w].Del(c)
			s.dsat[w]--
		}
	}
}

// recordIncumbent commits the complete current coloring as the new best,
// atomically with the UB update: both or neither.
func (s *bbState) recordIncumbent(k int) {
	s.ub = k
	copy(s.best, s.color)
}
