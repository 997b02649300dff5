// Package extensor implements Extensor, an element of an exterior algebra:
// a formal sum Σ_B c_B e_B over disjoint basis sets B with nonzero integer
// coefficients c_B.
//
// Extensor is the arithmetic core of the extensor-coding algorithm: vertex
// codings are extensors, the graph's adjacency operator is lifted to act on
// them, and the top-degree coefficient of the resulting extensor after k−1
// matrix–vector products is (in expectation) proportional to the number of
// simple k-paths in the graph.
//
// Representation is a term list kept sorted by basis, rather than a hash
// map keyed by bitset: better cache locality for the small, dense term
// counts this algorithm produces. All operations are value-semantic —
// every method returns a new Extensor rather than mutating its receiver.
package extensor
