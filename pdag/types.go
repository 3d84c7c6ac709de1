// SPDX-License-Identifier: MIT

package pdag

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a non-positive size or a non-square matrix.
	ErrBadShape = errors.New("pdag: invalid shape")

	// ErrOutOfRange indicates a vertex index outside 0..N-1.
	ErrOutOfRange = errors.New("pdag: index out of range")

	// ErrInconsistentEdge indicates a pair of cells violating the edge invariant
	// or a non-empty diagonal cell.
	ErrInconsistentEdge = errors.New("pdag: inconsistent edge")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("pdag: self loop")
)

// EdgeState is the content of one directed cell.
type EdgeState uint8

const (
	NoEdge EdgeState = iota
	Undirected
	Arrow
)

// String implements fmt.Stringer.
func (s EdgeState) String() string {
	switch s {
	case NoEdge:
		return "none"
	case Undirected:
		return "undirected"
	case Arrow:
		return "arrow"
	default:
		return fmt.Sprintf("EdgeState(%d)", uint8(s))
	}
}

// Pair is an unordered vertex pair stored canonically with X < Y.
type Pair struct {
	X, Y int
}

// NewPair returns the canonical Pair for a and b.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{X: a, Y: b}
}

// String renders the pair as "(x,y)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }
