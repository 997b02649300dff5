package xgraph

import "github.com/katalvlaran/xtensor/sparsematrix"

// Graph is an immutable graph handle: a vertex count and the {0,1}
// adjacency SparseMatrix over it. It is created once — by Builder.Freeze
// or a format parser — and never mutated afterward, so it may be shared
// freely across trials without locking.
type Graph struct {
	numVert int
	adj     *sparsematrix.Matrix[uint8]
}

// New wraps an already-built adjacency matrix as a Graph, validating that
// it is square and sized numVert×numVert.
func New(numVert int, adj *sparsematrix.Matrix[uint8]) (*Graph, error) {
	if numVert <= 0 {
		return nil, ErrInvalidVertexCount
	}
	if adj.Rows() != numVert || adj.Cols() != numVert {
		return nil, ErrDimensionMismatch
	}
	return &Graph{numVert: numVert, adj: adj}, nil
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int { return g.numVert }

// Adjacency returns the graph's {0,1} adjacency matrix.
func (g *Graph) Adjacency() *sparsematrix.Matrix[uint8] { return g.adj }
