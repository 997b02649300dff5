package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graph6-encode a 4-path 0-1-2-3: upper triangle bits in row-major order
// by columns above the diagonal are (i,j) for i=1..3, j=0..i-1:
// (1,0)=1 (2,0)=0 (2,1)=1 (3,0)=0 (3,1)=0 (3,2)=1 -> bit stream
// 1 0 1 0 0 1, padded to a multiple of 6 with zero bits: 101001.
func TestParseGraph6FourPath(t *testing.T) {
	n := byte(4 + 63)
	bits := []int{1, 0, 1, 0, 0, 1}
	v := 0
	for i, b := range bits {
		if b == 1 {
			v |= 1 << uint(5-i)
		}
	}
	data := string([]byte{n, byte(v + 63)})

	g, err := ParseGraph6(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, []int{1}, g.Adjacency().NeighborsOf(0))
	assert.ElementsMatch(t, []int{0, 2}, g.Adjacency().NeighborsOf(1))
	assert.ElementsMatch(t, []int{1, 3}, g.Adjacency().NeighborsOf(2))
	assert.Equal(t, []int{2}, g.Adjacency().NeighborsOf(3))
}

func TestParseGraph6HeaderIsOptional(t *testing.T) {
	n := byte(2 + 63)
	data := ">>graph6<<" + string([]byte{n, byte(1<<5 + 63)})
	g, err := ParseGraph6(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumVertices())
	assert.Equal(t, []int{1}, g.Adjacency().NeighborsOf(0))
}

func TestParseGraph6MalformedTruncatedHeader(t *testing.T) {
	_, err := ParseGraph6(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseSparse6ReturnsNotImplemented(t *testing.T) {
	n := byte(5 + 63)
	data := ":" + string([]byte{n})
	_, err := ParseSparse6(strings.NewReader(data))
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestParseSparse6RejectsMissingHeader(t *testing.T) {
	_, err := ParseSparse6(strings.NewReader("not-a-sparse6-file"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseTSVBuildsDirectedEdges(t *testing.T) {
	input := "% comment\n% x 3 y\n1\t2\n2\t3\n3\t1\n"
	g, err := ParseTSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, []int{1}, g.Adjacency().NeighborsOf(0))
	assert.Equal(t, []int{2}, g.Adjacency().NeighborsOf(1))
	assert.Equal(t, []int{0}, g.Adjacency().NeighborsOf(2))
}

func TestParseTSVRejectsMissingHeaderCount(t *testing.T) {
	_, err := ParseTSV(strings.NewReader("1\t2\n"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}
