package algorithm

import (
	"github.com/katalvlaran/xtensor/coding"
	"github.com/katalvlaran/xtensor/xgraph"
)

// U decides whether G has any simple k-path, using the deterministic
// Vandermonde coding: the walk sum is nonzero iff at least one such path
// exists. Intended regime is inputs where
// the true count is 0 or 1; it also reports correctly for larger counts,
// since a nonzero walk sum still implies at least one path.
func U(g *xgraph.Graph, k int) (bool, error) {
	c := coding.Vandermonde(g.NumVertices(), k)
	v, err := xgraph.WalkSum(g, k, c)
	if err != nil {
		return false, err
	}
	return !v.IsZero(), nil
}
