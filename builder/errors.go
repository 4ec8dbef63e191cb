package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size below the family's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices for this topology")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability must be within [0,1]")

	// ErrInvalidDimensions indicates a non-positive board dimension.
	ErrInvalidDimensions = errors.New("builder: dimensions must be positive")
)
