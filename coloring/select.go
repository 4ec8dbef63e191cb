// Package coloring - branching vertex selection.
//
// Both selectors return an uncolored vertex, or -1 only when every vertex
// is already colored. Ties resolve deterministically toward the lowest
// index, so identical states always branch identically.
package coloring

import "github.com/katalvlaran/chromatic/colorset"

// selectClassic implements the classic DSATUR rule: maximum saturation
// degree, ties by maximum degree, further ties by lowest index.
//
// Complexity: O(n).
func (s *bbState) selectClassic() int {
	best := -1
	for v := 0; v < s.g.N; v++ {
		if s.color[v] != uncolored {
			continue
		}
		if best == -1 ||
			s.dsat[v] > s.dsat[best] ||
			(s.dsat[v] == s.dsat[best] && s.g.Deg[v] > s.g.Deg[best]) {
			best = v
		}
	}

	return best
}

// selectSewell implements Sewell's three-level lexicographic rule:
//
//  1. maximum saturation degree;
//  2. among those, maximum degree;
//  3. among those, maximum Σ over uncolored neighbors u of
//     |opts(v) ∩ opts(u)|, where opts(x) = Mask(UB) \ forbidden[x].
//
// Branching on the vertex whose remaining options are most entangled with
// its neighborhood maximizes propagation. When UB ≥ 63 the option mask no
// longer fits the ColorSet word; the selector degrades to the classic
// choice (the lowest-index vertex surviving stages 1 and 2).
//
// Complexity: O(n + |cands|·degmax).
func (s *bbState) selectSewell() int {
	n := s.g.N
	if n <= 0 {
		return -1
	}

	// Stage 1: max saturation, then max degree among the saturated.
	maxDsat, maxDeg := -1, -1

	var v int
	for v = 0; v < n; v++ {
		if s.color[v] != uncolored {
			continue
		}
		if s.dsat[v] > maxDsat {
			maxDsat = s.dsat[v]
		}
	}
	for v = 0; v < n; v++ {
		if s.color[v] != uncolored || s.dsat[v] != maxDsat {
			continue
		}
		if s.g.Deg[v] > maxDeg {
			maxDeg = s.g.Deg[v]
		}
	}

	// Stage 2: collect every survivor; the scratch slice is reused across
	// nodes and grows on demand — no fixed candidate cap.
	s.cands = s.cands[:0]
	first := -1
	for v = 0; v < n; v++ {
		if s.color[v] != uncolored || s.dsat[v] != maxDsat || s.g.Deg[v] != maxDeg {
			continue
		}
		if first == -1 {
			first = v
		}
		s.cands = append(s.cands, v)
	}
	if len(s.cands) <= 1 || s.ub >= colorset.MaxColors {
		return first
	}

	// Stage 3: Sewell score.
	mask := colorset.Mask(s.ub)
	best, bestScore := first, -1

	var (
		optsV colorset.Set
		score int
	)
	for _, v = range s.cands {
		optsV = mask &^ s.forbidden[v]
		score = 0
		for _, u := range s.g.Neighbors(v) {
			if s.color[u] != uncolored {
				continue
			}
			score += (optsV & (mask &^ s.forbidden[u])).Count()
		}
		if score > bestScore {
			bestScore = score
			best = v
		}
	}

	return best
}

// pickVertex routes selection by strategy tag. Furini keeps classic
// selection; its contribution is the pre-branch bound, not the branching
// order.
func (s *bbState) pickVertex() int {
	if s.strategy == SewellDSATUR {
		return s.selectSewell()
	}

	return s.selectClassic()
}
