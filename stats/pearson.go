// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
)

// Pearson returns the sample Pearson correlation of x and y.
// Implementation:
//   - Stage 1: centre both sequences on their means.
//   - Stage 2: accumulate Σdx·dy, Σdx², Σdy² in index order.
//   - Stage 3: r = Σdx·dy / sqrt(Σdx²·Σdy²), clipped to [-1, 1].
//
// Degenerate inputs (fewer than two values, or a constant sequence) return 0.
// The computation is exactly symmetric: Pearson(x, y) == Pearson(y, x).
//
// Errors:
//   - ErrLengthMismatch when len(x) != len(y).
//
// Complexity: O(n) time, O(1) extra space.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Pearson: %d vs %d: %w", len(x), len(y), ErrLengthMismatch)
	}

	return pearson(x, y), nil
}

// pearson is the unchecked kernel; callers guarantee equal lengths.
func pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}

	var i int
	var mx, my float64
	for i = 0; i < n; i++ {
		mx += x[i]
		my += y[i]
	}
	mx /= float64(n)
	my /= float64(n)

	var dx, dy, sxy, sxx, syy float64
	for i = 0; i < n; i++ {
		dx = x[i] - mx
		dy = y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0 // constant sequence: undefined, read as independent
	}

	r := sxy / math.Sqrt(sxx*syy)
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}

	return r
}
