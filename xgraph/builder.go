package xgraph

import (
	"sync"

	"github.com/katalvlaran/xtensor/sparsematrix"
)

// BuilderOption configures a Builder before edges are added.
type BuilderOption func(*Builder)

// WithDirected sets whether edges added to the Builder are directed. The
// default is undirected: AddEdge(i, j) also inserts the mirror (j, i).
func WithDirected(directed bool) BuilderOption {
	return func(b *Builder) { b.directed = directed }
}

// Builder accumulates vertices (implicitly, by index) and edges before
// being frozen into an immutable Graph. It carries no per-vertex metadata
// and no edge weights: every stored adjacency value in this domain is 1.
//
// mu guards edges against concurrent AddEdge calls; there is no separate
// vertex lock because Builder's vertex count is fixed at construction
// rather than grown incrementally.
type Builder struct {
	mu       sync.Mutex
	numVert  int
	directed bool
	edges    map[[2]int]struct{}
}

// NewBuilder returns a Builder for exactly numVert vertices (indices
// 0..numVert-1).
func NewBuilder(numVert int, opts ...BuilderOption) (*Builder, error) {
	if numVert <= 0 {
		return nil, ErrInvalidVertexCount
	}
	b := &Builder{numVert: numVert, edges: make(map[[2]int]struct{})}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// AddEdge records an edge from i to j. For an undirected Builder (the
// default) it also records the mirror edge j→i. Self-loops are permitted;
// duplicate edges are idempotent (the adjacency value is always 1, never
// a multiplicity count).
func (b *Builder) AddEdge(i, j int) error {
	if i < 0 || i >= b.numVert || j < 0 || j >= b.numVert {
		return ErrVertexOutOfRange
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.edges[[2]int{i, j}] = struct{}{}
	if !b.directed {
		b.edges[[2]int{j, i}] = struct{}{}
	}
	return nil
}

// Freeze snapshots the accumulated edges into an immutable Graph. The
// Builder remains usable afterward; further AddEdge calls do not affect
// Graphs already produced by Freeze.
func (b *Builder) Freeze() (*Graph, error) {
	b.mu.Lock()
	triples := make([]sparsematrix.Triple[uint8], 0, len(b.edges))
	for e := range b.edges {
		triples = append(triples, sparsematrix.Triple[uint8]{Row: e[0], Col: e[1], Val: 1})
	}
	b.mu.Unlock()

	adj, err := sparsematrix.FromTriples(b.numVert, b.numVert, triples, sparsematrix.Uint8Ring)
	if err != nil {
		return nil, err
	}
	return New(b.numVert, adj)
}
