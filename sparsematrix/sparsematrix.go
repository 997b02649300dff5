package sparsematrix

import "sort"

// Entry is one nonzero (column, value) pair stored in a Matrix row.
type Entry[T any] struct {
	Col int
	Val T
}

// Triple is a (row, column, value) coordinate used to build a Matrix from a
// coordinate list, e.g. from an edge list assembled by xgraph.Builder.
type Triple[T any] struct {
	Row, Col int
	Val      T
}

// Matrix is a row-major sparse matrix over coefficient type T: a mapping
// from row index to an ordered-by-column sequence of nonzero entries.
// Invariant: every row slice is sorted ascending by Col, contains no
// duplicate Col, and no entry with a zero Val (per the supplied Ring).
type Matrix[T any] struct {
	nrows, ncols int
	rows         map[int][]Entry[T]
	ring         Ring[T]
}

// NewEmpty returns an nrows×ncols Matrix with no nonzero entries.
func NewEmpty[T any](nrows, ncols int, ring Ring[T]) (*Matrix[T], error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Matrix[T]{nrows: nrows, ncols: ncols, rows: make(map[int][]Entry[T]), ring: ring}, nil
}

// NewFromDense builds a Matrix from a dense row-major slice of length
// nrows*ncols, dropping zero entries.
func NewFromDense[T any](nrows, ncols int, data []T, ring Ring[T]) (*Matrix[T], error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != nrows*ncols {
		return nil, ErrDimensionMismatch
	}

	m := &Matrix[T]{nrows: nrows, ncols: ncols, rows: make(map[int][]Entry[T]), ring: ring}
	for i := 0; i < nrows; i++ {
		for j := 0; j < ncols; j++ {
			v := data[i*ncols+j]
			if !ring.IsZero(v) {
				m.rows[i] = append(m.rows[i], Entry[T]{Col: j, Val: v})
			}
		}
	}
	return m, nil
}

// FromTriples builds a Matrix from an unordered coordinate list, summing
// values that share a (row, col) coordinate and dropping zero results.
func FromTriples[T any](nrows, ncols int, triples []Triple[T], ring Ring[T]) (*Matrix[T], error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, ErrInvalidDimensions
	}
	acc := make(map[[2]int]T, len(triples))
	order := make([][2]int, 0, len(triples))
	for _, tr := range triples {
		if tr.Row < 0 || tr.Row >= nrows || tr.Col < 0 || tr.Col >= ncols {
			return nil, ErrDimensionMismatch
		}
		key := [2]int{tr.Row, tr.Col}
		if cur, ok := acc[key]; ok {
			acc[key] = ring.Add(cur, tr.Val)
		} else {
			acc[key] = tr.Val
			order = append(order, key)
		}
	}

	m := &Matrix[T]{nrows: nrows, ncols: ncols, rows: make(map[int][]Entry[T]), ring: ring}
	for _, key := range order {
		v := acc[key]
		if ring.IsZero(v) {
			continue
		}
		m.rows[key[0]] = append(m.rows[key[0]], Entry[T]{Col: key[1], Val: v})
	}
	for i := range m.rows {
		sort.Slice(m.rows[i], func(a, b int) bool { return m.rows[i][a].Col < m.rows[i][b].Col })
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.nrows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.ncols }

// Ring returns the coefficient Ring this Matrix was built with.
func (m *Matrix[T]) Ring() Ring[T] { return m.ring }

// NeighborsOf returns the ordered column indices j with a nonzero A[i,j].
func (m *Matrix[T]) NeighborsOf(i int) []int {
	entries := m.rows[i]
	out := make([]int, len(entries))
	for k, e := range entries {
		out[k] = e.Col
	}
	return out
}

// RowEntries returns the stored (column, value) entries of row i, in
// ascending-column order.
func (m *Matrix[T]) RowEntries(i int) []Entry[T] {
	return m.rows[i]
}

// MulVec returns A·v: a dense length-nrows vector whose i-th entry is
// Σ_j A[i,j]·v[j], iterating only over stored entries. For each stored
// entry, the matrix's own value is always the left operand of Ring.Mul and
// v[j] the right operand — required for non-commutative rings such as
// extensor.Extensor, where the coded adjacency's coefficient must be the
// left side of every wedge product.
func (m *Matrix[T]) MulVec(v []T) ([]T, error) {
	if len(v) != m.ncols {
		return nil, ErrDimensionMismatch
	}
	res := make([]T, m.nrows)
	for i := 0; i < m.nrows; i++ {
		acc := m.ring.Zero()
		for _, e := range m.rows[i] {
			acc = m.ring.Add(acc, m.ring.Mul(e.Val, v[e.Col]))
		}
		res[i] = acc
	}
	return res, nil
}
