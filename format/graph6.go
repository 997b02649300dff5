package format

import (
	"bytes"
	"io"

	"github.com/katalvlaran/xtensor/xgraph"
)

var graph6Header = []byte(">>graph6<<")

// ParseGraph6 decodes a dense, undirected graph6-encoded graph: an
// optional ">>graph6<<" header, the n-encoding, then the upper triangle
// packed 6 bits per byte, row-major by columns above the diagonal. A set
// bit marks both (i,j) and (j,i).
func ParseGraph6(r io.Reader) (*xgraph.Graph, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, graph6Header)

	n, rest, err := decodeN(data)
	if err != nil {
		return nil, err
	}

	bits := unpackSixBitStream(rest)

	b, err := xgraph.NewBuilder(n, xgraph.WithDirected(false))
	if err != nil {
		return nil, err
	}

	idx := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if idx >= len(bits) {
				return nil, ErrMalformedInput
			}
			if bits[idx] == 1 {
				if err := b.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
			idx++
		}
	}
	return b.Freeze()
}
