package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xtensor/graphgen"
)

func TestUFalseWhenGraphTooSmallForK(t *testing.T) {
	g, err := graphgen.Build(3, true, graphgen.Triangle())
	require.NoError(t, err)

	ok, err := U(g, 4)
	require.NoError(t, err)
	assert.False(t, ok, "no simple 4-path exists among 3 vertices")
}

func TestUTrueOnPathsUpToLength(t *testing.T) {
	const n = 5
	g, err := graphgen.Build(n, true, graphgen.Path(n))
	require.NoError(t, err)

	for k := 2; k <= n; k++ {
		ok, err := U(g, k)
		require.NoError(t, err)
		assert.Truef(t, ok, "U(P_%d, %d) should be true", n, k)
	}

	ok, err := U(g, n+1)
	require.NoError(t, err)
	assert.False(t, ok, "U(P_%d, %d) should be false", n, n+1)
}

func TestCDirectedTriangleKEqualsTwo(t *testing.T) {
	g, err := graphgen.Build(3, true, graphgen.Triangle())
	require.NoError(t, err)

	est, err := C(g, 2, 0.5, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, est, 1.5)
	assert.LessOrEqual(t, est, 4.5)
}

func TestCUndirectedP3KEqualsThree(t *testing.T) {
	g, err := graphgen.Build(3, false, graphgen.Path(3))
	require.NoError(t, err)

	est, err := C(g, 3, 0.5, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, est, 1.0)
	assert.LessOrEqual(t, est, 3.0)
}

func TestCUndirectedSixPathKEqualsThree(t *testing.T) {
	g, err := graphgen.Build(6, false, graphgen.Path(6))
	require.NoError(t, err)

	est, err := C(g, 3, 0.5, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, est, 4.0)
	assert.LessOrEqual(t, est, 12.0)
}

func TestCCompleteGraphK10(t *testing.T) {
	g, err := graphgen.Build(10, false, graphgen.Complete(10))
	require.NoError(t, err)

	est, err := C(g, 3, 0.8, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, est, 144.0)
	assert.LessOrEqual(t, est, 1296.0)
}

func TestCBinaryTreeSevenNodesKEqualsTwo(t *testing.T) {
	g, err := graphgen.Build(7, true, graphgen.BinaryTree7())
	require.NoError(t, err)

	est, err := C(g, 2, 0.2, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, est, 4.8)
	assert.LessOrEqual(t, est, 7.2)
}

func TestCTriangleKEqualsFourIsExactlyZero(t *testing.T) {
	g, err := graphgen.Build(3, true, graphgen.Triangle())
	require.NoError(t, err)

	est, err := C(g, 4, 0.2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, est, "no simple 4-path exists in a 3-vertex graph")
}

func TestCRejectsInvalidParameters(t *testing.T) {
	g, err := graphgen.Build(3, true, graphgen.Triangle())
	require.NoError(t, err)

	_, err = C(g, 1, 0.5, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = C(g, 2, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = C(g, 2, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestCParallelAndSequentialBothWithinTolerance(t *testing.T) {
	g, err := graphgen.Build(10, false, graphgen.Complete(10))
	require.NoError(t, err)

	seq, err := C(g, 3, 0.8, 7)
	require.NoError(t, err)

	par, err := C(g, 3, 0.8, 7, WithParallelism(4))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, seq, 144.0)
	assert.LessOrEqual(t, seq, 1296.0)
	assert.GreaterOrEqual(t, par, 144.0)
	assert.LessOrEqual(t, par, 1296.0)
}
