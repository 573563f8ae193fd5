package mdp

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for CSR construction.
var (
	// ErrBadCSRShape indicates non-positive dimensions or an index
	// pointer array whose length is not rows+1.
	ErrBadCSRShape = errors.New("mdp: CSR shape and index pointer disagree")
	// ErrBadCSRData indicates column indices and data of unequal length,
	// a non-monotone index pointer, or a column index out of range.
	ErrBadCSRData = errors.New("mdp: CSR column indices and data are inconsistent")
)

// CSR is a minimal compressed-sparse-row matrix. It exists to carry
// per-action sparse reward matrices into reward resolution and
// implements gonum's mat.Matrix; it is not a general sparse
// linear-algebra type.
//
// Row i spans data[indptr[i]:indptr[i+1]] with matching column indices,
// sorted ascending within a row.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

// NewCSR builds a CSR matrix from raw compressed-row storage.
//
// Validation:
//  1. rows, cols ≥ 1 and len(indptr) == rows+1 (ErrBadCSRShape).
//  2. indptr[0] == 0, indptr non-decreasing, indptr[rows] == len(data),
//     len(indices) == len(data) (ErrBadCSRData).
//  3. Every column index in [0, cols) (ErrBadCSRData).
//
// The storage slices are copied.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows < 1 || cols < 1 || len(indptr) != rows+1 {
		return nil, fmt.Errorf("%w: %d×%d with %d row pointers", ErrBadCSRShape, rows, cols, len(indptr))
	}
	if indptr[0] != 0 || indptr[rows] != len(data) || len(indices) != len(data) {
		return nil, fmt.Errorf("%w: %d pointers over %d indices and %d values",
			ErrBadCSRData, len(indptr), len(indices), len(data))
	}
	for i := 0; i < rows; i++ {
		if indptr[i] > indptr[i+1] {
			return nil, fmt.Errorf("%w: row pointer decreases at row %d", ErrBadCSRData, i)
		}
	}
	for i := 0; i < rows; i++ {
		for k := indptr[i] + 1; k < indptr[i+1]; k++ {
			if indices[k-1] >= indices[k] {
				return nil, fmt.Errorf("%w: row %d columns not strictly increasing", ErrBadCSRData, i)
			}
		}
	}
	for _, c := range indices {
		if c < 0 || c >= cols {
			return nil, fmt.Errorf("%w: column %d out of range (cols=%d)", ErrBadCSRData, c, cols)
		}
	}

	return &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}, nil
}

// Dims returns the matrix dimensions. Part of mat.Matrix.
func (c *CSR) Dims() (r, cols int) { return c.rows, c.cols }

// At returns the value at (i, j), zero for entries not stored.
// Panics when the indices are out of bounds, matching mat.Dense.
// Complexity: O(log nnz(row i)) via binary search within the row.
func (c *CSR) At(i, j int) float64 {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		panic("mdp: CSR index out of range")
	}
	lo, hi := c.indptr[i], c.indptr[i+1]
	row := c.indices[lo:hi]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return c.data[lo+k]
	}

	return 0
}

// T returns the transpose view. Part of mat.Matrix.
func (c *CSR) T() mat.Matrix { return mat.Transpose{Matrix: c} }

// NNZ returns the number of stored entries.
func (c *CSR) NNZ() int { return len(c.data) }
