package algorithm

import "errors"

// ErrInvalidParameter is returned when algorithm C is called with k < 2,
// or eps outside (0, 1).
var ErrInvalidParameter = errors.New("algorithm: k must be >= 2 and eps must be in (0, 1)")
