package graph

import "errors"

var (
	// ErrNilGraph indicates a nil *CSR was passed where a graph is required.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrNegativeVertexCount indicates N < 0.
	ErrNegativeVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrShapeMismatch indicates Start/Deg/Adj lengths or offsets that do not
	// describe a canonical CSR layout.
	ErrShapeMismatch = errors.New("graph: start/degree arrays inconsistent with adjacency")

	// ErrVertexOutOfRange indicates a neighbor index outside [0, N).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates an edge {v,v}; the engine requires loop-free input.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrUnsortedAdjacency indicates a neighbor list that is not strictly
	// ascending. Binary-search adjacency tests depend on sorted input.
	ErrUnsortedAdjacency = errors.New("graph: adjacency list not sorted ascending")

	// ErrDuplicateEdge indicates the same neighbor listed twice for one vertex.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrAsymmetricEdge indicates an edge present in one endpoint's list only.
	ErrAsymmetricEdge = errors.New("graph: edge missing its mirror")
)
