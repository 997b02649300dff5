// Package bitset implements BasisSet, a fixed-width set of small positive
// integers used to index the generators of an exterior algebra.
//
// A BasisSet is a 64-bit word: bit i (1-based) set means index i belongs to
// the set. That gives room for k up to 32 once an extensor coding is lifted
// (lifting doubles the grade, so a k-wedge of lifted codings reaches basis
// cardinality 2k; see the extensor package's Lift).
package bitset
