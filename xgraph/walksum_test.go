package xgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xtensor/extensor"
)

func TestWalkSumTwoStepDirectedEdge(t *testing.T) {
	b, err := NewBuilder(2, WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1))
	g, err := b.Freeze()
	require.NoError(t, err)

	coding := []extensor.Extensor{extensor.Simple(1, 1), extensor.Simple(1, 2)}
	sum, err := WalkSum(g, 2, coding)
	require.NoError(t, err)
	assert.False(t, sum.IsZero(), "a 2-path should leave a nonzero walk sum")
}

func TestWalkSumVanishesOnSelfLoop(t *testing.T) {
	b, err := NewBuilder(1, WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 0))
	g, err := b.Freeze()
	require.NoError(t, err)

	coding := []extensor.Extensor{extensor.Simple(1, 1)}
	sum, err := WalkSum(g, 2, coding)
	require.NoError(t, err)
	assert.True(t, sum.IsZero(), "revisiting a vertex wedges an extensor with itself and vanishes")
}

func TestWalkSumCodingLengthMismatch(t *testing.T) {
	b, err := NewBuilder(2)
	require.NoError(t, err)
	g, err := b.Freeze()
	require.NoError(t, err)

	_, err = WalkSum(g, 2, []extensor.Extensor{extensor.Simple(1, 1)})
	assert.ErrorIs(t, err, ErrCodingLength)
}

func TestWalkSumSingleStepIsIdentity(t *testing.T) {
	b, err := NewBuilder(2)
	require.NoError(t, err)
	g, err := b.Freeze()
	require.NoError(t, err)

	coding := []extensor.Extensor{extensor.Simple(3, 1), extensor.Simple(5, 2)}
	sum, err := WalkSum(g, 1, coding)
	require.NoError(t, err)
	assert.True(t, sum.Equal(extensor.Add(coding[0], coding[1])))
}
