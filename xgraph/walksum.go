package xgraph

import (
	"errors"

	"github.com/katalvlaran/xtensor/extensor"
	"github.com/katalvlaran/xtensor/sparsematrix"
)

// ErrCodingLength is returned when the supplied coding vector's length does
// not match the graph's vertex count.
var ErrCodingLength = errors.New("xgraph: coding vector length must equal vertex count")

// WalkSum computes W_k(c) = Σ_i (A'^(k-1)·c)_i, where A' = AddCoding(adj, c).
// It is the sole way algorithm U and C reach into the graph's adjacency
// structure.
//
// The iteration is r ← c; repeat (k-1) times: r ← A'·r; return Σ r_i. Each
// step depends on the previous and runs strictly sequentially within one
// call; independent calls — one per trial — may run concurrently against
// the same *Graph without synchronization, since Graph is immutable and
// every call builds its own coded matrix and intermediate vectors.
func WalkSum(g *Graph, k int, coding []extensor.Extensor) (extensor.Extensor, error) {
	if len(coding) != g.numVert {
		return extensor.Zero(), ErrCodingLength
	}

	coded, err := sparsematrix.AddCoding(g.adj, coding)
	if err != nil {
		return extensor.Zero(), err
	}

	r := make([]extensor.Extensor, len(coding))
	copy(r, coding)

	for step := 1; step < k; step++ {
		r, err = coded.MulVec(r)
		if err != nil {
			return extensor.Zero(), err
		}
	}

	sum := extensor.Zero()
	for _, v := range r {
		sum = extensor.Add(sum, v)
	}
	return sum, nil
}
