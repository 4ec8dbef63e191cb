// Package coloring - heuristic bound providers.
//
// greedy clique  → global lower bound  (ω(G) ≤ χ(G))
// DSATUR         → initial upper bound (a proper coloring is a certificate)
//
// Both are deterministic: ties resolve to the lowest vertex index via
// stable ordering, so identical inputs produce identical bounds.
package coloring

import (
	"sort"

	"github.com/katalvlaran/chromatic/colorset"
	"github.com/katalvlaran/chromatic/graph"
)

// GreedyClique returns the size of a greedily-built clique: vertices are
// visited in degree-descending order (ties by index) and accepted when
// adjacent to every member taken so far. The result lower-bounds ω(G) and
// therefore χ(G).
//
// Contracts:
//   - g must be non-nil and satisfy the CSR contract (see graph.Validate);
//     n == 0 yields 0.
//
// Complexity: O(n log n + n·ω·log degmax) time, O(n) space.
func GreedyClique(g *graph.CSR) (int, error) {
	if g == nil {
		return 0, graph.ErrNilGraph
	}

	return greedyClique(g), nil
}

// greedyClique assumes a validated graph.
func greedyClique(g *graph.CSR) int {
	n := g.N
	if n <= 0 {
		return 0
	}

	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Deg[order[i]] > g.Deg[order[j]]
	})

	clique := make([]int, 0, n)

	var (
		v  int
		ok bool
	)
	for _, v = range order {
		ok = true
		for _, m := range clique {
			if !g.IsAdjacent(v, m) {
				ok = false
				break
			}
		}
		if ok {
			clique = append(clique, v)
		}
	}

	return len(clique)
}

// Dsatur runs the DSATUR coloring heuristic: repeatedly pick the uncolored
// vertex of maximum saturation degree (ties by maximum degree, then lowest
// index) and give it the smallest color no neighbor uses. The returned
// count is a valid upper bound for χ(G) and the coloring is proper.
//
// Contracts:
//   - g must be non-nil and satisfy the CSR contract; n == 0 yields (0, []).
//
// Errors:
//   - ErrTooManyColors when the heuristic would need a color index ≥ 64;
//     such instances exceed the engine's ColorSet width.
//
// Complexity: O(n² + n·degmax) time, O(n) space.
func Dsatur(g *graph.CSR) (int, []int, error) {
	if g == nil {
		return 0, nil, graph.ErrNilGraph
	}

	return dsatur(g)
}

// dsatur assumes a validated graph.
func dsatur(g *graph.CSR) (int, []int, error) {
	n := g.N
	colors := make([]int, n)
	for v := range colors {
		colors[v] = uncolored
	}
	if n == 0 {
		return 0, colors, nil
	}

	var (
		cset = make([]colorset.Set, n)
		dsat = make([]int, n)
		maxC = 0
	)

	for iter := 0; iter < n; iter++ {
		// Select: max saturation, ties by max degree, first index wins.
		u := -1
		for v := 0; v < n; v++ {
			if colors[v] != uncolored {
				continue
			}
			if u == -1 ||
				dsat[v] > dsat[u] ||
				(dsat[v] == dsat[u] && g.Deg[v] > g.Deg[u]) {
				u = v
			}
		}

		// Smallest color absent from u's neighborhood.
		c := 0
		for c < 64 && cset[u].Has(c) {
			c++
		}
		if c >= 64 {
			return 0, nil, ErrTooManyColors
		}
		colors[u] = c
		if c > maxC {
			maxC = c
		}

		// Propagate to uncolored neighbors.
		for _, w := range g.Neighbors(u) {
			if colors[w] != uncolored {
				continue
			}
			if !cset[w].Has(c) {
				cset[w].Add(c)
				dsat[w]++
			}
		}
	}

	return maxC + 1, colors, nil
}
