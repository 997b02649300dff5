// Package xgraph provides the Graph handle consumed by the extensor-coding
// algorithms, and the walk-sum operator that is their only access to it.
//
// A Graph owns a {0,1} adjacency SparseMatrix and a vertex count; it is
// immutable once constructed, so reads need no locking. To assemble one
// from scratch — as the format and graphgen packages do — use Builder, a
// mutex-guarded accumulator whose Freeze method snapshots the accumulated
// edges into an immutable Graph.
package xgraph
