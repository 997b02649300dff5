package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrialStateMeanAndCount(t *testing.T) {
	var s TrialState
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, float64(0), s.Mean())

	m1 := s.Update(10)
	assert.Equal(t, float64(10), m1)
	assert.Equal(t, 1, s.Count())

	m2 := s.Update(20)
	assert.Equal(t, float64(15), m2)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, float64(15), s.Mean())
}

func TestTrialStateStddevZeroBeforeTwoSamples(t *testing.T) {
	var s TrialState
	assert.Equal(t, float64(0), s.Stddev())
	s.Update(5)
	assert.Equal(t, float64(0), s.Stddev())
}

func TestTrialStateDoesNotStopOnFirstSample(t *testing.T) {
	var s TrialState
	s.Update(42)
	assert.False(t, s.ShouldStop(0.5), "one sample gives no spread evidence, so no early stop")
}

func TestTrialStateConstantSequenceHasZeroStddevAndStops(t *testing.T) {
	var s TrialState
	for i := 0; i < 35; i++ {
		s.Update(7)
	}
	assert.Equal(t, float64(0), s.Stddev())
	assert.True(t, s.ShouldStop(0.1), "a constant sample sequence past 30 trials stops regardless of eps")
}

func TestTrialStateDoesNotStopOnNoisyEarlySamples(t *testing.T) {
	var s TrialState
	samples := []float64{1, 9, 2, 8, 3, 7}
	for _, x := range samples {
		s.Update(x)
	}
	assert.False(t, s.ShouldStop(0.01), "few noisy samples should not satisfy a tight confidence bound")
}

func TestTrialStateEventuallyStopsOnConvergingSequence(t *testing.T) {
	var s TrialState
	stopped := false
	for i := 0; i < 200; i++ {
		s.Update(100)
		if s.ShouldStop(0.05) {
			stopped = true
			break
		}
	}
	assert.True(t, stopped, "a sequence of identical samples should eventually satisfy ShouldStop")
}
