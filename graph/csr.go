package graph

import "sort"

// CSR is a compressed-sparse-row view of a simple undirected graph on the
// vertex set {0..N-1}. See the package documentation for the layout contract.
type CSR struct {
	// N is the number of vertices.
	N int

	// Adj holds every vertex's neighbor list, concatenated, sorted ascending
	// per vertex. len(Adj) == Σ Deg[v] == 2·|E|.
	Adj []int

	// Start[v] is the offset of v's neighbor list inside Adj.
	Start []int

	// Deg[v] is the degree of v.
	Deg []int
}

// Neighbors returns v's neighbor list as a sub-slice of Adj (sorted
// ascending). The slice aliases the borrowed storage; callers must not
// mutate it.
//
// Complexity: O(1).
func (g *CSR) Neighbors(v int) []int {
	return g.Adj[g.Start[v] : g.Start[v]+g.Deg[v]]
}

// IsAdjacent reports whether {u,v} is an edge, by binary search in u's
// sorted neighbor list. Unsorted input is a contract violation (see Validate).
//
// Complexity: O(log deg(u)).
func (g *CSR) IsAdjacent(u, v int) bool {
	lo, hi := g.Start[u], g.Start[u]+g.Deg[u]-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case g.Adj[mid] == v:
			return true
		case g.Adj[mid] < v:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return false
}

// NumEdges returns |E| (each undirected edge counted once).
//
// Complexity: O(1).
func (g *CSR) NumEdges() int { return len(g.Adj) / 2 }

// Density returns |E| / C(N,2) — the fraction of possible edges present.
// Returns 0 for N < 2.
func (g *CSR) Density() float64 {
	if g.N < 2 {
		return 0
	}

	return float64(g.NumEdges()) / (float64(g.N) * float64(g.N-1) / 2)
}

// Validate checks the full CSR input contract and returns the first
// violation found as a sentinel error. Solvers call this once at entry;
// everything after assumes a valid view.
//
// Checks, in order:
//  1. non-nil receiver, N ≥ 0;
//  2. Start/Deg lengths equal N, offsets canonical, Σ Deg == len(Adj);
//  3. every neighbor in range, no self-loops;
//  4. each list strictly ascending (duplicates reported separately);
//  5. every edge mirrored in the other endpoint's list.
//
// Complexity: O(N + E·log degmax) time, O(1) space.
func (g *CSR) Validate() error {
	// Stage 1: shape.
	if g == nil {
		return ErrNilGraph
	}
	if g.N < 0 {
		return ErrNegativeVertexCount
	}
	if len(g.Start) != g.N || len(g.Deg) != g.N {
		return ErrShapeMismatch
	}

	var (
		v      int // vertex under inspection
		offset int // expected canonical start offset
	)
	for v = 0; v < g.N; v++ {
		if g.Deg[v] < 0 || g.Deg[v] > g.N-1 {
			return ErrShapeMismatch
		}
		if g.Start[v] != offset {
			return ErrShapeMismatch
		}
		offset += g.Deg[v]
	}
	if offset != len(g.Adj) {
		return ErrShapeMismatch
	}

	// Stage 2: per-list ordering and value range.
	var (
		i    int
		w    int
		prev int
	)
	for v = 0; v < g.N; v++ {
		prev = -1
		for i = g.Start[v]; i < g.Start[v]+g.Deg[v]; i++ {
			w = g.Adj[i]
			if w < 0 || w >= g.N {
				return ErrVertexOutOfRange
			}
			if w == v {
				return ErrSelfLoop
			}
			if w == prev {
				return ErrDuplicateEdge
			}
			if w < prev {
				return ErrUnsortedAdjacency
			}
			prev = w
		}
	}

	// Stage 3: symmetry. Sorted lists are now trustworthy, so the mirror
	// check may binary-search.
	for v = 0; v < g.N; v++ {
		for i = g.Start[v]; i < g.Start[v]+g.Deg[v]; i++ {
			if !g.IsAdjacent(g.Adj[i], v) {
				return ErrAsymmetricEdge
			}
		}
	}

	return nil
}

// NewCSR builds a canonical CSR from an undirected edge list. Each pair
// {u,v} is mirrored into both endpoints' lists; repeated pairs (in either
// orientation) collapse to a single edge. Self-loops and out-of-range
// endpoints are rejected.
//
// Contracts:
//   - n ≥ 0; every endpoint in [0, n); u ≠ v for every pair.
//
// Complexity: O(n + E·log E) time, O(n + E) space.
func NewCSR(n int, edges [][2]int) (*CSR, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	// Stage 1: bucket mirrored endpoints per vertex.
	lists := make([][]int, n)

	var u, w int
	for _, e := range edges {
		u, w = e[0], e[1]
		if u < 0 || u >= n || w < 0 || w >= n {
			return nil, ErrVertexOutOfRange
		}
		if u == w {
			return nil, ErrSelfLoop
		}
		lists[u] = append(lists[u], w)
		lists[w] = append(lists[w], u)
	}

	// Stage 2: sort and deduplicate each list, accumulating CSR arrays.
	g := &CSR{
		N:     n,
		Start: make([]int, n),
		Deg:   make([]int, n),
	}

	var (
		v    int
		prev int
	)
	for v = 0; v < n; v++ {
		sort.Ints(lists[v])
		g.Start[v] = len(g.Adj)
		prev = -1
		for _, w = range lists[v] {
			if w == prev {
				continue // duplicate input pair
			}
			g.Adj = append(g.Adj, w)
			prev = w
		}
		g.Deg[v] = len(g.Adj) - g.Start[v]
	}

	return g, nil
}
