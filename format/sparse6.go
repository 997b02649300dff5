package format

import (
	"bytes"
	"io"

	"github.com/katalvlaran/xtensor/xgraph"
)

var (
	sparse6Header       = []byte(">>sparse6<<")
	sparse6LeadingColon = []byte(":")
)

// ParseSparse6 decodes only the header and vertex count of a sparse6
// input: a leading ':' or '>>sparse6<<' header identifies the encoding,
// then the usual n-encoding is read. The edge list itself is not decoded;
// callers receive ErrNotImplemented.
func ParseSparse6(r io.Reader) (*xgraph.Graph, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(data, sparse6Header):
		data = data[len(sparse6Header):]
	case bytes.HasPrefix(data, sparse6LeadingColon):
		data = data[len(sparse6LeadingColon):]
	default:
		return nil, ErrMalformedInput
	}

	if _, _, err := decodeN(data); err != nil {
		return nil, err
	}
	return nil, ErrNotImplemented
}
