// SPDX-License-Identifier: MIT

// Package fixture generates deterministic synthetic observational datasets
// with a known causal structure for tests and examples.
//
// Every generator draws standard-normal noise from a seeded math/rand source:
// the same (n, seed) always produces the same records. Columns are sampled one
// after another (all of X, then all of Y, …) and then transposed into records.
package fixture

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// Variable indices shared by the three-variable generators.
const (
	X = 0
	Y = 1
	Z = 2
)

// Variable indices of the four-variable scenario.
const (
	A = 0
	B = 1
	C = 2
	D = 3
)

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// normal draws n samples from N(loc, 1).
func normal(rng *rand.Rand, n int, loc float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = loc + rng.NormFloat64()
	}

	return out
}

// plus returns a+b(+c…) elementwise, reusing no input.
func plus(cols ...[]float64) []float64 {
	out := make([]float64, len(cols[0]))
	for _, c := range cols {
		for i := range out {
			out[i] += c[i]
		}
	}

	return out
}

// records transposes columns into row records.
func records(cols ...[]float64) [][]float64 {
	n := len(cols[0])
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(cols))
		for v, c := range cols {
			row[v] = c[i]
		}
		out[i] = row
	}

	return out
}

// Collider returns X → Z ← Y: X, Y independent, Z = X + Y + noise.
func Collider(n int, seed int64) [][]float64 {
	rng := rngFromSeed(seed)
	x := normal(rng, n, 0)
	y := normal(rng, n, 0)
	z := plus(x, y, normal(rng, n, 0))

	return records(x, y, z)
}

// Chain returns X → Y → Z: Y = X + noise, Z = Y + noise.
func Chain(n int, seed int64) [][]float64 {
	rng := rngFromSeed(seed)
	x := normal(rng, n, 0)
	y := plus(x, normal(rng, n, 0))
	z := plus(y, normal(rng, n, 0))

	return records(x, y, z)
}

// Diamond returns the four-variable scenario A → C → D ← B with
// A ~ N(10, 1), B ~ N(0, 1), C = A + noise, D = B + C + noise.
func Diamond(n int, seed int64) [][]float64 {
	rng := rngFromSeed(seed)
	a := normal(rng, n, 10)
	b := normal(rng, n, 0)
	c := plus(a, normal(rng, n, 0))
	d := plus(b, c, normal(rng, n, 0))

	return records(a, b, c, d)
}

// Independent returns vars mutually independent standard-normal variables.
func Independent(n, vars int, seed int64) [][]float64 {
	rng := rngFromSeed(seed)
	cols := make([][]float64, vars)
	for v := range cols {
		cols[v] = normal(rng, n, 0)
	}

	return records(cols...)
}
