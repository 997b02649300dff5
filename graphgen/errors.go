package graphgen

import "errors"

// ErrTooFewVertices is returned when a constructor's vertex count falls
// below what its shape requires (a path needs two vertices, a cycle
// three).
var ErrTooFewVertices = errors.New("graphgen: too few vertices for this shape")
