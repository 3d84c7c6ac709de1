// SPDX-License-Identifier: MIT

package pdag

import "fmt"

// Marks records which arrowheads were placed by the propagation rules.
// A mark is always written to both directed cells of a pair; it is only
// meaningful where the matching Graph cell is an Arrow.
type Marks struct {
	n     int
	cells []bool
}

// NewMarks returns an n×n all-false mark matrix.
func NewMarks(n int) (*Marks, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewMarks(%d): %w", n, ErrBadShape)
	}

	return &Marks{n: n, cells: make([]bool, n*n)}, nil
}

// N returns the matrix dimension.
func (m *Marks) N() int { return m.n }

// Mark sets both (i, j) and (j, i).
func (m *Marks) Mark(i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Mark(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.cells[i*m.n+j] = true
	m.cells[j*m.n+i] = true

	return nil
}

// IsMarked reports cell (i, j); panics on invalid indices.
func (m *Marks) IsMarked(i, j int) bool { return m.cells[i*m.n+j] }

// Matrix returns a copy of the marks as a V×V slice of rows.
func (m *Marks) Matrix() [][]bool {
	out := make([][]bool, m.n)
	for i := range out {
		out[i] = make([]bool, m.n)
		copy(out[i], m.cells[i*m.n:(i+1)*m.n])
	}

	return out
}

// Clone returns a deep copy.
func (m *Marks) Clone() *Marks {
	cells := make([]bool, len(m.cells))
	copy(cells, m.cells)

	return &Marks{n: m.n, cells: cells}
}

// Equal reports whether both matrices have the same size and cells.
func (m *Marks) Equal(o *Marks) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}
