// Package sparsematrix implements a row-major sparse matrix generic over a
// coefficient ring, storing only nonzero entries as a mapping from row index
// to an ordered sequence of (column, value) pairs.
//
// Two instantiations matter to this module: Matrix[uint8] holds a graph's
// {0,1} adjacency, and Matrix[extensor.Extensor] (the coded matrix) holds
// that same adjacency after AddCoding embeds a vertex-indexed vector of
// extensors into it. Because Go generics have no operator overloading, the
// ring operations a coefficient type must support are expressed as the
// Ring[T] capability interface rather than as operators.
package sparsematrix
