package algorithm

import (
	"math"
	"sync"

	"github.com/katalvlaran/xtensor/bitset"
	"github.com/katalvlaran/xtensor/coding"
	"github.com/katalvlaran/xtensor/stats"
	"github.com/katalvlaran/xtensor/xgraph"
)

// Option configures a call to C.
type Option func(*config)

type config struct {
	parallelism int
}

// WithParallelism sets the number of trials run concurrently per batch.
// The default, 1, runs every trial sequentially and applies the stopping
// test after each one. A value above 1 batches that many trials across worker
// goroutines, each with its own coding.DeriveRNG stream, and applies the
// stopping test once per completed batch rather than after every trial —
// a latency/throughput trade, not a change to the rule itself.
func WithParallelism(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.parallelism = n
		}
	}
}

// C estimates the number of simple k-paths in g to within relative eps,
// with probability at least 0.99, using Bernoulli-coded trials and the
// Student-t adaptive stopping rule. seed 0 selects the package's default
// deterministic seed.
func C(g *xgraph.Graph, k int, eps float64, seed int64, opts ...Option) (float64, error) {
	if k < 2 || eps <= 0 || eps >= 1 {
		return 0, ErrInvalidParameter
	}

	cfg := config{parallelism: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	tMax := int(math.Ceil(float64(k*k) / (eps * eps)))
	factorial := factorial(k)
	topBasis := topBasisOf(k)
	n := g.NumVertices()

	var state stats.TrialState
	var nextTrial uint64

	if cfg.parallelism <= 1 {
		for state.Count() < tMax {
			x, err := runTrial(g, k, n, seed, nextTrial, topBasis, factorial)
			if err != nil {
				return 0, err
			}
			nextTrial++
			m := state.Update(x)
			if state.ShouldStop(eps) {
				return m, nil
			}
		}
		return state.Mean(), nil
	}

	for state.Count() < tMax {
		batch := cfg.parallelism
		if remaining := tMax - state.Count(); batch > remaining {
			batch = remaining
		}
		results := make([]float64, batch)
		errs := make([]error, batch)

		var wg sync.WaitGroup
		for i := 0; i < batch; i++ {
			trialIdx := nextTrial + uint64(i)
			wg.Add(1)
			go func(slot int, trialIdx uint64) {
				defer wg.Done()
				x, err := runTrial(g, k, n, seed, trialIdx, topBasis, factorial)
				results[slot] = x
				errs[slot] = err
			}(i, trialIdx)
		}
		wg.Wait()
		nextTrial += uint64(batch)

		var m float64
		for i := 0; i < batch; i++ {
			if errs[i] != nil {
				return 0, errs[i]
			}
			m = state.Update(results[i])
		}
		if state.ShouldStop(eps) {
			return m, nil
		}
	}
	return state.Mean(), nil
}

// runTrial draws one fresh Bernoulli coding, computes the walk sum, and
// extracts x_t = |u| / k!, where u is the coefficient stored on the
// explicit top basis e_1∧…∧e_{2k}, the one surviving grade after k
// lifted codings are wedged together.
func runTrial(g *xgraph.Graph, k, n int, seed int64, trialIdx uint64, topBasis bitset.BasisSet, factorial int64) (float64, error) {
	rng := coding.DeriveRNG(seed, trialIdx)
	c := coding.Bernoulli(n, k, rng)

	v, err := xgraph.WalkSum(g, k, c)
	if err != nil {
		return 0, err
	}

	var u int64
	if coeff, ok := v.TopBasis(topBasis); ok {
		u = coeff
	}
	if u < 0 {
		u = -u
	}
	return float64(u) / float64(factorial), nil
}

// topBasisOf returns the basis e_1∧…∧e_{2k}, the top grade a k-wedge of
// lifted codings reaches.
func topBasisOf(k int) bitset.BasisSet {
	indices := make([]int, 2*k)
	for i := range indices {
		indices[i] = i + 1
	}
	return bitset.FromIndices(indices...)
}

// factorial returns k! for the small k values this algorithm is used
// with; coefficients stay far below 2^62 for k <= 10.
func factorial(k int) int64 {
	f := int64(1)
	for i := int64(2); i <= int64(k); i++ {
		f *= i
	}
	return f
}
