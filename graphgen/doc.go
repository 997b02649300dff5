// Package graphgen builds the small deterministic fixture graphs used to
// exercise algorithm U and C: paths, cycles, complete graphs, and a
// 7-node binary tree.
//
// Constructors emit edges in a stable order with deterministic-by-index
// vertex numbering, so the same call always yields the same adjacency.
package graphgen
