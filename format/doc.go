// Package format parses graph6, sparse6, and TSV edge-list inputs into an
// *xgraph.Graph. It is the sole place this module touches the
// filesystem's byte-level framing; everything downstream operates on the
// resulting immutable Graph handle.
//
// Parsers take an io.Reader and return an explicit (Graph, error) pair
// rather than panicking on malformed input.
package format
