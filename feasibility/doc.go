// Package feasibility checks whether a graph is consistent with observed data.
//
// A graph implies a basis set of conditional-independence claims: for every
// pair x < y that is not adjacent, x ⊥ y given every vertex u with an edge
// cell u→x or u→y that is not NoEdge (arrows into x or y and undirected
// neighbors both count). Check evaluates the claims in ascending pair order
// and stops at the first one whose stratified correlation exceeds the
// independence threshold.
//
// A graph with no non-adjacent pairs makes no claims and is always feasible.
//
// Example:
//
//	eng, _ := stats.NewEngine(ds)
//	ok, err := feasibility.IsFeasible(eng, g)
package feasibility
