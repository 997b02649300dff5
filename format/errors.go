package format

import "errors"

// ErrMalformedInput is returned when a header is truncated or an
// n-encoding byte falls outside the valid printable range.
var ErrMalformedInput = errors.New("format: malformed input")

// ErrNotImplemented is returned by ParseSparse6 for the edge list: only
// the header and vertex count are decoded.
var ErrNotImplemented = errors.New("format: sparse6 edge-list parsing not implemented")
