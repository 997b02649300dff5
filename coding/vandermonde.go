package coding

import "github.com/katalvlaran/xtensor/extensor"

// Vandermonde builds the deterministic length-n coding used by algorithm U.
// For each vertex v in 1..n it produces the extensor with coefficients
// (v^0, v^1, …, v^(k-1)) on bases ({1}, {2}, …, {k}), lifted by k so the
// resulting basis cardinality reaches 2k once k vertices' codings are
// wedged together.
func Vandermonde(n, k int) []extensor.Extensor {
	out := make([]extensor.Extensor, n)
	for idx := 0; idx < n; idx++ {
		v := int64(idx + 1)
		coeffs := make([]int64, k)
		basis := make([][]int, k)
		pow := int64(1)
		for i := 0; i < k; i++ {
			coeffs[i] = pow
			basis[i] = []int{i + 1}
			pow *= v
		}
		out[idx] = extensor.Lift(extensor.New(coeffs, basis), k)
	}
	return out
}
