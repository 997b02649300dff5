package stats

import "math"

// TrialState is the running state of algorithm C's adaptive stopping rule
// for a fixed (graph, k, eps): the sample count, the running mean of raw
// samples x_1..x_t, and the sample standard deviation of the *running
// means* m_1..m_t themselves, not of the raw samples. The zero value is
// a valid empty TrialState.
type TrialState struct {
	t int // trials completed so far

	sumX float64 // Σ x_j, j=1..t

	// Welford accumulators for the m_1..m_t sequence (the mean of means
	// and the running sum of squared deviations from it), updated once
	// per trial as each new m_t is appended to that sequence.
	meanOfMeans float64
	m2OfMeans   float64
}

// Update records one more trial's sample x and returns the running mean
// m_t = mean(x_1..x_t) after recording it.
//
// Stage 1 (raw mean): fold x into Σx_j and derive m_t.
// Stage 2 (mean-of-means): feed m_t into a Welford accumulator tracking
// the mean and sum-of-squared-deviations of the m_1..m_t sequence, so
// Stddev reflects variability of the running mean itself, the quantity
// the stopping rule tests.
func (s *TrialState) Update(x float64) float64 {
	s.t++
	s.sumX += x
	m := s.sumX / float64(s.t)

	delta := m - s.meanOfMeans
	s.meanOfMeans += delta / float64(s.t)
	delta2 := m - s.meanOfMeans
	s.m2OfMeans += delta * delta2

	return m
}

// Count returns the number of trials recorded so far (t).
func (s *TrialState) Count() int { return s.t }

// Mean returns the current running mean m_t, or 0 if no trial has been
// recorded yet.
func (s *TrialState) Mean() float64 {
	if s.t == 0 {
		return 0
	}
	return s.sumX / float64(s.t)
}

// Stddev returns the sample standard deviation of the running-mean
// sequence m_1..m_t (σ_t). It is 0 for t<2, matching the convention that
// a single observation has no variance to report.
func (s *TrialState) Stddev() float64 {
	if s.t < 2 {
		return 0
	}
	return math.Sqrt(s.m2OfMeans / float64(s.t-1))
}

// ShouldStop applies a one-sided Student-t confidence-interval test: the
// current mean is certified within relative eps of the population mean
// once its lower confidence bound exceeds (1-eps)·m_t, or — the
// degenerate escape — every trial so far returned the exact same value
// (σ_t=0) for more than 30 trials.
//
// The confidence-interval branch requires σ_t > 0: a zero σ_t carries no
// evidence about spread (it also holds trivially at t=1), so that case is
// routed exclusively through the 30-trial escape.
func (s *TrialState) ShouldStop(eps float64) bool {
	if s.t == 0 {
		return false
	}
	m := s.Mean()
	sigma := s.Stddev()

	if sigma > 0 {
		tau := TValue(s.t - 1)
		lowerBound := m - tau*sigma/math.Sqrt(float64(s.t))
		if lowerBound > (1-eps)*m {
			return true
		}
	}
	return sigma == 0 && s.t > 30
}
