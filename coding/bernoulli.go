package coding

import (
	"math/rand"

	"github.com/katalvlaran/xtensor/extensor"
)

// Bernoulli draws the randomised length-n coding used by algorithm C. For
// each vertex v in 1..n it independently samples k uniform ±1 signs,
// assembles them on bases ({1}, …, {k}), and lifts by k.
// rng must not be nil and must not be shared with a concurrently-running
// trial; derive a private stream per trial with DeriveRNG.
func Bernoulli(n, k int, rng *rand.Rand) []extensor.Extensor {
	out := make([]extensor.Extensor, n)
	for idx := 0; idx < n; idx++ {
		coeffs := make([]int64, k)
		basis := make([][]int, k)
		for i := 0; i < k; i++ {
			if rng.Intn(2) == 0 {
				coeffs[i] = -1
			} else {
				coeffs[i] = 1
			}
			basis[i] = []int{i + 1}
		}
		out[idx] = extensor.Lift(extensor.New(coeffs, basis), k)
	}
	return out
}
