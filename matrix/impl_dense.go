// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide a single flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Express the value-type lifecycle explicitly: copy (deep), move (O(1) transfer,
//     source left empty), resize (prefix-preserving reallocation) and reset.
//
// Storage states:
//   - empty:      r == 0 && c == 0, data == nil (owns nothing).
//   - degenerate: exactly one of r/c is zero, data is a non-nil zero-length slice.
//   - regular:    r ≥ 1 && c ≥ 1, len(data) == r*c.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Copy: O(r*c); Move: O(1);
//     SetRows/SetCols: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxApply    = "Apply"
	ctxSetRows  = "SetRows"
	ctxSetCols  = "SetCols"
	ctxCopyFrom = "CopyFrom"
	ctxMoveFrom = "MoveFrom"
	ctxFromRows = "NewDenseFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix that exclusively owns its buffer.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     nil only in the empty state.
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewEmpty returns a 0×0 matrix that owns no storage.
func NewEmpty() *Dense {
	return &Dense{validateNaNInf: DefaultValidateNaNInf}
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and optional numeric policy.
//
// Implementation:
//   - Stage 1: ValidateShape(rows, cols).
//   - Stage 2: allocate a zero-filled buffer; make() zero-fills deterministically.
//   - Stage 3: apply numeric policy from options.
//
// Behavior highlights:
//   - A degenerate shape (exactly one zero dimension) is accepted and owns a
//     zero-length buffer; it has no addressable cells.
//   - 0×0 is rejected here; use NewEmpty for the empty state.
//
// Errors:
//   - ErrInvalidDimensions (negative, or both zero).
//   - ErrAllocationFailure (rows*cols overflows or exceeds MaxElements).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromRows builds a matrix from a rectangular [][]float64 (copied).
// Implementation:
//   - Stage 1: reject an empty outer slice or zero-width rows (ErrInvalidDimensions).
//   - Stage 2: reject ragged input (ErrDimensionMismatch) before allocating.
//   - Stage 3: flatten rows in order into a fresh buffer; enforce numeric policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(grid [][]float64, opts ...Option) (*Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d: %w", ctxFromRows, i, ErrDimensionMismatch)
		}
	}
	m, err := NewDense(len(grid), cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < cols; j++ {
			if m.validateNaNInf && isNonFinite(grid[i][j]) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = grid[i][j]
		}
	}

	return m, nil
}

// newResult allocates an operation result of shape rows×cols that inherits
// the numeric policy of its left operand. 0×0 yields the empty state.
func newResult(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows == 0 && cols == 0 {
		return &Dense{validateNaNInf: validateNaNInf}, nil
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports the canonical empty state (0×0).
func (m *Dense) IsEmpty() bool { return m.r == 0 && m.c == 0 }

// HasStorage reports whether m owns a buffer. Degenerate shapes do, the
// empty state does not.
func (m *Dense) HasStorage() bool { return m.data != nil }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; every cell of an empty or degenerate matrix
// is out of range.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy as a Matrix (dynamic type *Dense).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with identical shape, data and policy.
// MAIN DESCRIPTION:
//   - Copy construction: the result owns a fresh buffer; mutations on either
//     side never reach the other.
//
// Behavior highlights:
//   - The empty state copies to the empty state (no buffer).
//   - Degenerate shapes copy to degenerate shapes with their own zero-length buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Copy() *Dense {
	cp := &Dense{r: m.r, c: m.c, validateNaNInf: m.validateNaNInf}
	if m.data != nil {
		cp.data = make([]float64, len(m.data))
		copy(cp.data, m.data)
	}

	return cp
}

// CopyFrom is copy assignment: m's previous buffer is released and replaced
// by a deep copy of src. Self-assignment is a no-op.
func (m *Dense) CopyFrom(src *Dense) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	cp := src.Copy()
	*m = *cp

	return nil
}

// Move transfers ownership of m's buffer to a new *Dense in O(1).
// MAIN DESCRIPTION:
//   - Move construction: the returned matrix has exactly the shape, data and
//     policy m had; m is left in the empty state (0×0, no buffer).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Move() *Dense {
	dst := &Dense{r: m.r, c: m.c, data: m.data, validateNaNInf: m.validateNaNInf}
	m.Reset()

	return dst
}

// MoveFrom is move assignment: m's previous buffer is released, src's buffer
// is adopted and src is left empty. Self-move is a no-op.
func (m *Dense) MoveFrom(src *Dense) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxMoveFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.r, m.c, m.data, m.validateNaNInf = src.r, src.c, src.data, src.validateNaNInf
	src.Reset()

	return nil
}

// Reset releases storage and returns m to the empty state. Idempotent.
// The numeric policy is kept.
func (m *Dense) Reset() {
	m.r, m.c, m.data = 0, 0, nil
}

// SetRows resizes m to n rows, keeping Cols().
// Rows [0, min(old,n)) are preserved; new rows are zero-filled; rows beyond n
// are lost. n equal to the current count is a no-op.
// Errors: ErrInvalidDimensions when n < 1; ErrAllocationFailure on overflow.
// On error m is unchanged.
func (m *Dense) SetRows(n int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetRows, ErrNilMatrix)
	}
	if n < 1 {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRows, n, ErrInvalidDimensions)
	}
	if n == m.r {
		return nil
	}
	if err := m.resize(n, m.c); err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRows, n, err)
	}

	return nil
}

// SetCols resizes m to n columns, keeping Rows().
// Columns [0, min(old,n)) of every row are preserved; new columns are
// zero-filled; columns beyond n are lost.
// Errors: ErrInvalidDimensions when n < 1; ErrAllocationFailure on overflow.
// On error m is unchanged.
func (m *Dense) SetCols(n int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetCols, ErrNilMatrix)
	}
	if n < 1 {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetCols, n, ErrInvalidDimensions)
	}
	if n == m.c {
		return nil
	}
	if err := m.resize(m.r, n); err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetCols, n, err)
	}

	return nil
}

// resize reallocates to rows×cols and copies the overlapping top-left block.
// The new buffer replaces the old one only after the copy succeeds.
func (m *Dense) resize(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	buf := make([]float64, rows*cols)
	keepR := min(m.r, rows)
	keepC := min(m.c, cols)
	for i := 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// Grid returns a deep [][]float64 copy of the cells, row by row.
// The empty state and degenerate shapes with zero rows return an empty slice.
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Intended for debugging; not for hot paths.
// Complexity: Time O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Apply replaces each element with f(i,j,v).
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic i→j order.
//
// Implementation:
//   - Stage 1: compute every new value into a scratch buffer.
//   - Stage 2: reject NaN/Inf if the policy is enabled (m stays untouched).
//   - Stage 3: swap the scratch buffer in.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value under the policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxApply, ErrNilMatrix)
	}
	if m.data == nil {
		return nil
	}
	out := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			out[base+j] = nv
		}
	}
	m.data = out

	return nil
}
