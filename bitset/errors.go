package bitset

import "errors"

// ErrCapacityExceeded is the programmer-error condition raised when a
// basis index falls outside [1, Width], or a ShiftRight would push a set
// index past Width. Both are fatal at the call site, so FromIndices and
// ShiftRight panic with this error rather than returning it — there is no
// recoverable caller action once a coding has been sized past what the
// exterior algebra's width supports.
var ErrCapacityExceeded = errors.New("bitset: capacity exceeded")

// ErrDuplicateIndex is the programmer-error condition raised when
// FromIndices is given the same index twice; a BasisSet has no notion of
// multiplicity.
var ErrDuplicateIndex = errors.New("bitset: duplicate index")
