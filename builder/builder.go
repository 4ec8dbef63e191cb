package builder

import "github.com/katalvlaran/chromatic/graph"

// Complete builds the complete graph K_n (n ≥ 1). χ(K_n) = n.
//
// Complexity: O(n²) edges.
func Complete(n int) (*graph.CSR, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	edges := make([][2]int, 0, n*(n-1)/2)

	var u, v int
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}

	return graph.NewCSR(n, edges)
}

// Edgeless builds the empty graph on n vertices (n ≥ 0).
// χ = 1 for n ≥ 1, 0 for n == 0.
func Edgeless(n int) (*graph.CSR, error) {
	if n < 0 {
		return nil, ErrTooFewVertices
	}

	return graph.NewCSR(n, nil)
}

// Path builds the simple path P_n (n ≥ 2). χ(P_n) = 2.
//
// Complexity: O(n).
func Path(n int) (*graph.CSR, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	edges := make([][2]int, 0, n-1)
	for v := 0; v < n-1; v++ {
		edges = append(edges, [2]int{v, v + 1})
	}

	return graph.NewCSR(n, edges)
}

// Cycle builds the cycle C_n (n ≥ 3). χ = 2 for even n, 3 for odd n.
//
// Complexity: O(n).
func Cycle(n int) (*graph.CSR, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}

	edges := make([][2]int, 0, n)
	for v := 0; v < n-1; v++ {
		edges = append(edges, [2]int{v, v + 1})
	}
	edges = append(edges, [2]int{n - 1, 0})

	return graph.NewCSR(n, edges)
}

// Star builds the star on n vertices with center 0 (n ≥ 2). χ = 2.
//
// Complexity: O(n).
func Star(n int) (*graph.CSR, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	edges := make([][2]int, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, [2]int{0, v})
	}

	return graph.NewCSR(n, edges)
}

// CompleteBipartite builds K_{a,b} with the left part on vertices [0,a)
// and the right part on [a, a+b) (a, b ≥ 1). χ = 2.
//
// Complexity: O(a·b) edges.
func CompleteBipartite(a, b int) (*graph.CSR, error) {
	if a < 1 || b < 1 {
		return nil, ErrTooFewVertices
	}

	edges := make([][2]int, 0, a*b)

	var u, v int
	for u = 0; u < a; u++ {
		for v = 0; v < b; v++ {
			edges = append(edges, [2]int{u, a + v})
		}
	}

	return graph.NewCSR(a+b, edges)
}

// Petersen builds the Petersen graph: outer 5-cycle 0..4, spokes i—i+5,
// inner pentagram on 5..9. n=10, m=15, χ = 3.
func Petersen() (*graph.CSR, error) {
	edges := make([][2]int, 0, 15)

	var i int
	for i = 0; i < 5; i++ {
		edges = append(edges, [2]int{i, (i + 1) % 5})   // outer cycle
		edges = append(edges, [2]int{i, i + 5})         // spoke
		edges = append(edges, [2]int{i + 5, (i+2)%5 + 5}) // pentagram
	}

	return graph.NewCSR(10, edges)
}

// Queen builds the queen graph on an r×c board: vertices are squares
// (row-major), adjacent when a chess queen moves between them in one step
// (same row, column or diagonal). queen5_5 (r=c=5) is the classic DIMACS
// instance with n=25, m=160, χ = 5.
//
// Complexity: O((r·c)²) pair scan.
func Queen(r, c int) (*graph.CSR, error) {
	if r < 1 || c < 1 {
		return nil, ErrInvalidDimensions
	}

	n := r * c
	edges := make([][2]int, 0, n*4)

	var (
		u, v           int
		ru, cu, rv, cv int
	)
	for u = 0; u < n; u++ {
		ru, cu = u/c, u%c
		for v = u + 1; v < n; v++ {
			rv, cv = v/c, v%c
			if ru == rv || cu == cv || ru-rv == cu-cv || ru-rv == cv-cu {
				edges = append(edges, [2]int{u, v})
			}
		}
	}

	return graph.NewCSR(n, edges)
}

// RandomSparse builds a G(n, p) random graph (n ≥ 1, 0 ≤ p ≤ 1) from a
// deterministic stream: the same (n, p, seed) triple always yields the same
// instance. seed 0 selects a fixed default stream. This is the DSJC-family
// analog used in benchmarks.
//
// Complexity: O(n²) coin flips.
func RandomSparse(n int, p float64, seed int64) (*graph.CSR, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	rng := rngFromSeed(seed)
	edges := make([][2]int, 0)

	var u, v int
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}

	return graph.NewCSR(n, edges)
}
