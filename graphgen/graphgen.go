package graphgen

import "github.com/katalvlaran/xtensor/xgraph"

// Constructor populates a freshly created Builder with a shape's
// vertices (implicit, by index) and edges. Build supplies the
// Builder; a Constructor only adds edges to it.
type Constructor func(b *xgraph.Builder) error

// Build constructs a Graph of numVert vertices (directed or undirected
// per the directed flag) by running ctor against a fresh Builder and
// freezing the result.
func Build(numVert int, directed bool, ctor Constructor) (*xgraph.Graph, error) {
	b, err := xgraph.NewBuilder(numVert, xgraph.WithDirected(directed))
	if err != nil {
		return nil, err
	}
	if err := ctor(b); err != nil {
		return nil, err
	}
	return b.Freeze()
}

// minNodes for each shape.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path returns a Constructor for the simple path 0→1→...→(n-1).
func Path(n int) Constructor {
	return func(b *xgraph.Builder) error {
		if n < minPathNodes {
			return ErrTooFewVertices
		}
		for i := 1; i < n; i++ {
			if err := b.AddEdge(i-1, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the n-vertex ring 0→1→...→(n-1)→0.
func Cycle(n int) Constructor {
	return func(b *xgraph.Builder) error {
		if n < minCycleNodes {
			return ErrTooFewVertices
		}
		for i := 0; i < n; i++ {
			if err := b.AddEdge(i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete returns a Constructor for the complete graph K_n: every
// unordered pair {i,j}, i<j, connected (mirrored automatically by an
// undirected Builder).
func Complete(n int) Constructor {
	return func(b *xgraph.Builder) error {
		if n < minCompleteNodes {
			return ErrTooFewVertices
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := b.AddEdge(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Triangle returns a Constructor for the 3-cycle 0→1→2→0, meant to be
// built on a directed Builder (Build(3, true, Triangle())).
func Triangle() Constructor {
	return Cycle(3)
}

// BinaryTree7 returns a Constructor for the 7-node complete binary tree
// (root=0; 0→1,0→2; 1→3,1→4; 2→5,2→6), meant to be built on a directed
// Builder (Build(7, true, BinaryTree7())).
func BinaryTree7() Constructor {
	return func(b *xgraph.Builder) error {
		edges := [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}}
		for _, e := range edges {
			if err := b.AddEdge(e[0], e[1]); err != nil {
				return err
			}
		}
		return nil
	}
}
