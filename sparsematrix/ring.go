package sparsematrix

import "github.com/katalvlaran/xtensor/extensor"

// Ring captures the operations a coefficient type T must support for
// Matrix[T] to add and multiply: an additive identity, a zero test, an addition, and a multiplication. Go generics carry no
// operator overloading, so this capability-interface approach stands in
// for it; callers supply one Ring value per coefficient type at matrix
// construction.
type Ring[T any] struct {
	Zero   func() T
	IsZero func(T) bool
	Add    func(a, b T) T
	Mul    func(a, b T) T
}

// Uint8Ring is the Ring for the raw {0,1} adjacency coefficient type.
var Uint8Ring = Ring[uint8]{
	Zero:   func() uint8 { return 0 },
	IsZero: func(v uint8) bool { return v == 0 },
	Add:    func(a, b uint8) uint8 { return a + b },
	Mul:    func(a, b uint8) uint8 { return a * b },
}

// ExtensorRing is the Ring for the coded-matrix coefficient type. Its Mul
// is the exterior wedge product, not a commutative ring multiplication —
// the coded matrix's rows always drive the left operand of that wedge, an
// operand-order invariant which MulVec below preserves.
var ExtensorRing = Ring[extensor.Extensor]{
	Zero:   extensor.Zero,
	IsZero: extensor.Extensor.IsZero,
	Add:    extensor.Add,
	Mul:    extensor.Mul,
}
