// SPDX-License-Identifier: MIT

package pdag

import (
	"fmt"
	"strings"
)

// Graph is a V×V matrix of EdgeState cells stored row-major.
// The zero value is not usable; construct with NewGraph, NewComplete or FromMatrix.
type Graph struct {
	n     int
	cells []EdgeState // cells[i*n+j] is the mark from i toward j
}

// NewGraph returns an n-vertex graph without edges.
//
// Errors:
//   - ErrBadShape if n <= 0.
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrBadShape)
	}

	return &Graph{n: n, cells: make([]EdgeState, n*n)}, nil
}

// NewComplete returns an n-vertex graph with every off-diagonal cell Undirected.
func NewComplete(n int) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				g.cells[i*n+j] = Undirected
			}
		}
	}

	return g, nil
}

// FromMatrix copies a square cell matrix into a Graph and validates it.
// Use it to feed graphs learned elsewhere into the feasibility check.
//
// Errors:
//   - ErrBadShape for an empty or non-square matrix.
//   - ErrInconsistentEdge when Validate fails.
func FromMatrix(m [][]EdgeState) (*Graph, error) {
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("FromMatrix: empty: %w", ErrBadShape)
	}
	g := &Graph{n: n, cells: make([]EdgeState, n*n)}
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d cells, want %d: %w", i, len(m[i]), n, ErrBadShape)
		}
		copy(g.cells[i*n:(i+1)*n], m[i])
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

func (g *Graph) check(i, j int) error {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return fmt.Errorf("(%d,%d) with %d vertices: %w", i, j, g.n, ErrOutOfRange)
	}

	return nil
}

func (g *Graph) checkPair(op string, i, j int) error {
	if err := g.check(i, j); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if i == j {
		return fmt.Errorf("%s(%d,%d): %w", op, i, j, ErrSelfLoop)
	}

	return nil
}

// State returns cell (i, j) with bounds checking.
func (g *Graph) State(i, j int) (EdgeState, error) {
	if err := g.check(i, j); err != nil {
		return NoEdge, fmt.Errorf("State: %w", err)
	}

	return g.cells[i*g.n+j], nil
}

// Cell returns cell (i, j). Like slice indexing it panics on invalid indices;
// use State for checked access.
func (g *Graph) Cell(i, j int) EdgeState { return g.cells[i*g.n+j] }

// Adjacent reports whether either cell of (i, j) carries an edge.
func (g *Graph) Adjacent(i, j int) bool {
	return g.cells[i*g.n+j] != NoEdge || g.cells[j*g.n+i] != NoEdge
}

// IsArrow reports whether cell (i, j) is an arrowhead i → j.
func (g *Graph) IsArrow(i, j int) bool { return g.cells[i*g.n+j] == Arrow }

// IsUndirected reports whether i — j is an undirected edge.
func (g *Graph) IsUndirected(i, j int) bool {
	return g.cells[i*g.n+j] == Undirected && g.cells[j*g.n+i] == Undirected
}

// Connect sets i — j (both cells Undirected).
func (g *Graph) Connect(i, j int) error {
	if err := g.checkPair("Connect", i, j); err != nil {
		return err
	}
	g.cells[i*g.n+j] = Undirected
	g.cells[j*g.n+i] = Undirected

	return nil
}

// Orient sets from → to and clears the reverse cell.
func (g *Graph) Orient(from, to int) error {
	if err := g.checkPair("Orient", from, to); err != nil {
		return err
	}
	g.cells[from*g.n+to] = Arrow
	g.cells[to*g.n+from] = NoEdge

	return nil
}

// Disconnect clears both cells of (i, j).
func (g *Graph) Disconnect(i, j int) error {
	if err := g.checkPair("Disconnect", i, j); err != nil {
		return err
	}
	g.cells[i*g.n+j] = NoEdge
	g.cells[j*g.n+i] = NoEdge

	return nil
}

// Neighbors returns every u != v adjacent to v, ascending.
// Panics if v is out of range.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		panic(fmt.Sprintf("pdag: Neighbors(%d) with %d vertices", v, g.n))
	}
	out := make([]int, 0, g.n)
	for u := 0; u < g.n; u++ {
		if u != v && g.Adjacent(u, v) {
			out = append(out, u)
		}
	}

	return out
}

// Edges lists every adjacent pair once, in ascending (X, Y) order.
func (g *Graph) Edges() []Pair {
	out := make([]Pair, 0)
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if g.Adjacent(i, j) {
				out = append(out, Pair{X: i, Y: j})
			}
		}
	}

	return out
}

// Validate checks the diagonal and every pair against the edge invariant.
func (g *Graph) Validate() error {
	var i, j int
	var a, b EdgeState
	for i = 0; i < g.n; i++ {
		if g.cells[i*g.n+i] != NoEdge {
			return fmt.Errorf("Validate: diagonal (%d,%d) is %v: %w", i, i, g.cells[i*g.n+i], ErrInconsistentEdge)
		}
		for j = i + 1; j < g.n; j++ {
			a, b = g.cells[i*g.n+j], g.cells[j*g.n+i]
			switch {
			case a == NoEdge && b == NoEdge:
			case a == Undirected && b == Undirected:
			case a == Arrow && b == NoEdge:
			case a == NoEdge && b == Arrow:
			default:
				return fmt.Errorf("Validate: (%d,%d)=%v, (%d,%d)=%v: %w", i, j, a, j, i, b, ErrInconsistentEdge)
			}
		}
	}

	return nil
}

// Matrix returns a copy of the cells as a V×V slice of rows.
func (g *Graph) Matrix() [][]EdgeState {
	out := make([][]EdgeState, g.n)
	for i := range out {
		out[i] = make([]EdgeState, g.n)
		copy(out[i], g.cells[i*g.n:(i+1)*g.n])
	}

	return out
}

// Clone returns a deep copy.
func (g *Graph) Clone() *Graph {
	cells := make([]EdgeState, len(g.cells))
	copy(cells, g.cells)

	return &Graph{n: g.n, cells: cells}
}

// Equal reports whether both graphs have the same size and cells.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// String renders the edge list, e.g. "{0—1, 0→2}".
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, p := range g.Edges() {
		if k > 0 {
			sb.WriteString(", ")
		}
		switch {
		case g.IsArrow(p.X, p.Y):
			fmt.Fprintf(&sb, "%d→%d", p.X, p.Y)
		case g.IsArrow(p.Y, p.X):
			fmt.Fprintf(&sb, "%d→%d", p.Y, p.X)
		default:
			fmt.Fprintf(&sb, "%d—%d", p.X, p.Y)
		}
	}
	sb.WriteByte('}')

	return sb.String()
}
