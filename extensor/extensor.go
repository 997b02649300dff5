package extensor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/xtensor/bitset"
)

// term is one (basis, coefficient) pair of an Extensor.
type term struct {
	basis bitset.BasisSet
	coeff int64
}

// Extensor is a formal sum Σ_B c_B e_B over disjoint basis sets B with
// nonzero int64 coefficients c_B. The zero value is the additive zero
// (the empty sum). terms is kept sorted ascending by basis and contains no
// duplicate basis and no zero coefficient.
type Extensor struct {
	terms []term
}

// Zero returns the additive identity: the extensor with no terms.
func Zero() Extensor { return Extensor{} }

// New constructs an Extensor from parallel coeffs/basis slices, one basis
// index list per coefficient (each passed to bitset.FromIndices). Equal
// lengths are required; a mismatch is a programmer error and panics.
// Duplicate basis sets collapse by summing their coefficients; any
// resulting zero coefficient is dropped.
func New(coeffs []int64, basisLists [][]int) Extensor {
	if len(coeffs) != len(basisLists) {
		panic("extensor: coeffs and basis must be of same length")
	}
	contributions := make([]term, 0, len(coeffs))
	for i, c := range coeffs {
		contributions = append(contributions, term{basis: bitset.FromIndices(basisLists[i]...), coeff: c})
	}
	return fromContributions(contributions)
}

// Simple constructs the single-term extensor c·e_basis.
func Simple(coeff int64, basis int) Extensor {
	return New([]int64{coeff}, [][]int{{basis}})
}

// IsZero reports whether x has no surviving nonzero terms.
func (x Extensor) IsZero() bool { return len(x.terms) == 0 }

// Coeffs returns the stored coefficients. Order matches the stable
// ascending-basis order used internally; it is not required to match
// construction order.
func (x Extensor) Coeffs() []int64 {
	out := make([]int64, len(x.terms))
	for i, t := range x.terms {
		out[i] = t.coeff
	}
	return out
}

// FirstCoeff returns the coefficient of the first stored basis in stable
// (ascending-basis) order, or (0, false) if x is zero. This is equivalent
// to the explicit top-basis coefficient only when the top basis is the
// only surviving term in expectation; prefer TopBasis when the top basis
// is known.
func (x Extensor) FirstCoeff() (int64, bool) {
	if len(x.terms) == 0 {
		return 0, false
	}
	return x.terms[0].coeff, true
}

// TopBasis returns the coefficient stored on exactly the given basis, or
// (0, false) if that basis does not appear.
func (x Extensor) TopBasis(basis bitset.BasisSet) (int64, bool) {
	for _, t := range x.terms {
		if t.basis == basis {
			return t.coeff, true
		}
	}
	return 0, false
}

// Equal reports whether x and y map every basis to the same coefficient.
func (x Extensor) Equal(y Extensor) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for i := range x.terms {
		if x.terms[i] != y.terms[i] {
			return false
		}
	}
	return true
}

// Add returns the extensor sum of x and y: coefficients on matching bases
// are summed, and any resulting zero coefficient is dropped.
func Add(x, y Extensor) Extensor {
	contributions := make([]term, 0, len(x.terms)+len(y.terms))
	contributions = append(contributions, x.terms...)
	contributions = append(contributions, y.terms...)
	return fromContributions(contributions)
}

// Sub returns x - y.
func Sub(x, y Extensor) Extensor {
	return Add(x, Scale(y, -1))
}

// Scale returns c·x.
func Scale(x Extensor, c int64) Extensor {
	if c == 0 {
		return Zero()
	}
	out := Extensor{terms: make([]term, 0, len(x.terms))}
	for _, t := range x.terms {
		out.terms = append(out.terms, term{basis: t.basis, coeff: t.coeff * c})
	}
	return out
}

// Mul returns the wedge product x ∧ y.
//
// For every pair of terms (B_a, c_a) in x and (B_b, c_b) in y: if
// And(B_a, B_b) is non-empty the pair vanishes (a repeated basis index);
// otherwise the contribution s·c_a·c_b lands on Xor(B_a, B_b), where s is
// bitset.Sign(B_a, B_b). Contributions on the same combined basis are
// accumulated and zero results dropped.
func Mul(x, y Extensor) Extensor {
	contributions := make([]term, 0, len(x.terms)*len(y.terms))
	for _, ta := range x.terms {
		for _, tb := range y.terms {
			if bitset.And(ta.basis, tb.basis) != 0 {
				continue // shared index: wedge vanishes
			}
			combined := bitset.Xor(ta.basis, tb.basis)
			sign := int64(bitset.Sign(ta.basis, tb.basis))
			contributions = append(contributions, term{basis: combined, coeff: sign * ta.coeff * tb.coeff})
		}
	}
	return fromContributions(contributions)
}

// Lift returns x ∧ shift(x, k), where shift(x, k) is x with every term's
// basis indices translated by +k. This doubles the grade of a grade-k
// coding so that a k-wedge of lifted codings reaches basis cardinality 2k,
// matching the dimension algorithm U and C require.
func Lift(x Extensor, k int) Extensor {
	shifted := Extensor{terms: make([]term, len(x.terms))}
	for i, t := range x.terms {
		shifted.terms[i] = term{basis: bitset.ShiftRight(t.basis, k), coeff: t.coeff}
	}
	return Mul(x, shifted)
}

// String renders x as a sum of coefficient·basis terms, in stable order.
func (x Extensor) String() string {
	if len(x.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range x.terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%de_%v", t.coeff, bitset.IndicesAscending(t.basis))
	}
	return sb.String()
}

// fromContributions sorts, merges duplicate bases by summing coefficients,
// and drops zero coefficients, returning a canonical Extensor.
func fromContributions(contributions []term) Extensor {
	sort.Slice(contributions, func(i, j int) bool { return contributions[i].basis < contributions[j].basis })

	merged := make([]term, 0, len(contributions))
	for _, t := range contributions {
		if n := len(merged); n > 0 && merged[n-1].basis == t.basis {
			merged[n-1].coeff += t.coeff
		} else {
			merged = append(merged, t)
		}
	}

	out := merged[:0]
	for _, t := range merged {
		if t.coeff != 0 {
			out = append(out, t)
		}
	}
	return Extensor{terms: out}
}
