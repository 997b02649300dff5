package xgraph

import "errors"

// Sentinel errors for xgraph operations.
var (
	// ErrInvalidVertexCount indicates a non-positive vertex count.
	ErrInvalidVertexCount = errors.New("xgraph: vertex count must be > 0")

	// ErrDimensionMismatch indicates the supplied adjacency matrix is not
	// numVert×numVert.
	ErrDimensionMismatch = errors.New("xgraph: adjacency dimensions do not match vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, numVert).
	ErrVertexOutOfRange = errors.New("xgraph: vertex index out of range")
)
