package sparsematrix

import "errors"

// Sentinel errors for sparsematrix operations: one prefixed sentinel per
// failure mode, checked via errors.Is at call sites.
var (
	// ErrDimensionMismatch indicates a matrix–vector product (or coding
	// overlay) was attempted with incompatible sizes. Programmer error;
	// fatal.
	ErrDimensionMismatch = errors.New("sparsematrix: dimension mismatch")

	// ErrInvalidDimensions indicates nrows or ncols was not positive.
	ErrInvalidDimensions = errors.New("sparsematrix: dimensions must be > 0")
)
