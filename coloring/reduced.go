// Package coloring - reduced-graph lower bound (Furini, Gabrel & Ternier
// 2017, Networks 69(2):124-141).
//
// At a node with k used color classes, build the reduced graph R:
//
//	Nodes
//	  s_c  — one super-node per used class c ∈ {0..k-1}
//	  u    — one node per uncolored vertex
//	Edges
//	  s_c ── s_d  iff some uncolored vertex sees both classes
//	  s_c ── u    iff c ∈ forbidden[u]
//	   u  ── w    iff u, w adjacent in G
//
// Any clique Q in R pins |Q| pairwise-conflicting color resources: every
// super-node is a committed class that cannot be reused, and every
// uncolored clique member must end up in a class distinct from all of them.
// So ω(R) ≤ χ(G), and a greedy clique in R is a valid per-node lower bound.
// This bound is what let Furini et al. prove χ(DSJC125.9) = 44.
//
// All working storage lives in a per-solve scratch arena sized once from n;
// the per-node recomputation allocates nothing beyond sort bookkeeping.
package coloring

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/chromatic/colorset"
)

// reducedScratch is the reusable working set of the reduced-graph bound.
// Row c of sees is a bitset over uncolored-vertex positions: bit i set means
// uncolored[i] is adjacent in G to some vertex of class c.
type reducedScratch struct {
	uncolored []int    // positions → vertex ids, filled per node
	subdeg    []int    // induced degrees for the k == 0 case
	words     int      // allocated words per sees row: ⌈n/64⌉
	sees      []uint64 // MaxColors rows × words

	// sadj holds super–super adjacency: row c is the set of classes d
	// conflicting with c.
	sadj [colorset.MaxColors]colorset.Set

	degR   []int // degree in R, indexed by R-node id
	order  []int // R-node ids sorted by degR
	clique []int // growing greedy clique
}

// init sizes the arena for an n-vertex solve.
func (r *reducedScratch) init(n int) {
	r.uncolored = make([]int, n)
	r.subdeg = make([]int, n)
	r.words = (n + 63) / 64
	r.sees = make([]uint64, colorset.MaxColors*r.words)
	r.degR = make([]int, colorset.MaxColors+n)
	r.order = make([]int, colorset.MaxColors+n)
	r.clique = make([]int, 0, colorset.MaxColors+n)
}

// seesBit reports bit i of row c.
func (r *reducedScratch) seesBit(c, i int) bool {
	return r.sees[c*r.words+i/64]>>uint(i%64)&1 != 0
}

// reducedBound returns ω-greedy(R) for the current node, a valid lower
// bound on χ(G). kUsed is the number of color classes in use.
//
// Degenerate and fallback paths:
//   - no uncolored vertices → kUsed (the node is a leaf anyway);
//   - kUsed == 0 → greedy clique on the induced uncolored subgraph;
//   - kUsed beyond the arena's row capacity → kUsed (safe, non-pruning;
//     cannot occur while the branching cap holds, kept as a guard).
//
// Complexity: O(k²·nu/64 + nu·degmax + (k+nu)·clique·log degmax) per node.
func (s *bbState) reducedBound(kUsed int) int {
	r := &s.reduced

	// Collect uncolored vertices; position i becomes R-node kUsed+i.
	nu := 0

	var v int
	for v = 0; v < s.g.N; v++ {
		if s.color[v] == uncolored {
			r.uncolored[nu] = v
			nu++
		}
	}
	if nu == 0 {
		return kUsed
	}
	if kUsed == 0 {
		return s.inducedClique(nu)
	}
	if kUsed > colorset.MaxColors {
		return kUsed
	}

	words := (nu + 63) / 64

	// sees[c][i] = 1 iff uncolored[i] is adjacent to class c. forbidden[u]
	// is exactly the set of classes u sees, so each row fill is a bit walk.
	var (
		c, d, i int
		row     []uint64
	)
	for c = 0; c < kUsed; c++ {
		row = r.sees[c*r.words : c*r.words+words]
		for i = range row {
			row[i] = 0
		}
	}
	for i = 0; i < nu; i++ {
		cs := s.forbidden[r.uncolored[i]]
		for cs != 0 {
			c = cs.Lowest()
			cs.Del(c)
			if c < kUsed {
				r.sees[c*r.words+i/64] |= 1 << uint(i%64)
			}
		}
	}

	// Super–super adjacency: classes c,d conflict iff their sees rows
	// intersect.
	for c = 0; c < kUsed; c++ {
		r.sadj[c] = 0
	}

	var rowD []uint64
	for c = 0; c < kUsed; c++ {
		row = r.sees[c*r.words : c*r.words+words]
		for d = c + 1; d < kUsed; d++ {
			rowD = r.sees[d*r.words : d*r.words+words]
			for i = range row {
				if row[i]&rowD[i] != 0 {
					r.sadj[c].Add(d)
					r.sadj[d].Add(c)
					break
				}
			}
		}
	}

	// Degree in R. Node ids: [0,kUsed) supers, [kUsed, kUsed+nu) uncolored.
	total := kUsed + nu

	var dR int
	for c = 0; c < kUsed; c++ {
		dR = r.sadj[c].Count()
		row = r.sees[c*r.words : c*r.words+words]
		for i = range row {
			dR += bits.OnesCount64(row[i])
		}
		r.degR[c] = dR
	}
	for i = 0; i < nu; i++ {
		v = r.uncolored[i]
		dR = s.forbidden[v].Count()
		for _, w := range s.g.Neighbors(v) {
			if s.color[w] == uncolored {
				dR++
			}
		}
		r.degR[kUsed+i] = dR
	}

	// Greedy clique over R-nodes in degR-descending order (stable: index
	// ascending on ties, matching the heuristic clique's determinism).
	ord := r.order[:total]
	for i = range ord {
		ord[i] = i
	}
	sort.SliceStable(ord, func(a, b int) bool {
		return r.degR[ord[a]] > r.degR[ord[b]]
	})

	cl := r.clique[:0]

	var ok bool
	for _, a := range ord {
		ok = true
		for _, b := range cl {
			if !s.reducedAdjacent(a, b, kUsed) {
				ok = false
				break
			}
		}
		if ok {
			cl = append(cl, a)
		}
	}

	return len(cl)
}

// reducedAdjacent tests adjacency between two R-nodes, routing to the
// appropriate source: super–super matrix, sees rows, or G itself.
func (s *bbState) reducedAdjacent(a, b, kUsed int) bool {
	r := &s.reduced
	switch {
	case a < kUsed && b < kUsed:
		return r.sadj[a].Has(b)
	case a < kUsed:
		return r.seesBit(a, b-kUsed)
	case b < kUsed:
		return r.seesBit(b, a-kUsed)
	default:
		return s.g.IsAdjacent(r.uncolored[a-kUsed], r.uncolored[b-kUsed])
	}
}

// inducedClique handles kUsed == 0: R collapses to the subgraph of G
// induced by the uncolored vertices, so run the degree-descending greedy
// clique directly on it.
func (s *bbState) inducedClique(nu int) int {
	r := &s.reduced

	var (
		i int
		v int
	)
	for i = 0; i < nu; i++ {
		r.subdeg[r.uncolored[i]] = 0
	}
	for i = 0; i < nu; i++ {
		v = r.uncolored[i]
		for _, w := range s.g.Neighbors(v) {
			if s.color[w] == uncolored {
				r.subdeg[v]++
			}
		}
	}

	list := r.uncolored[:nu]
	sort.SliceStable(list, func(a, b int) bool {
		return r.subdeg[list[a]] > r.subdeg[list[b]]
	})

	cl := r.clique[:0]

	var ok bool
	for _, v = range list {
		ok = true
		for _, m := range cl {
			if !s.g.IsAdjacent(v, m) {
				ok = false
				break
			}
		}
		if ok {
			cl = append(cl, v)
		}
	}

	return len(cl)
}
