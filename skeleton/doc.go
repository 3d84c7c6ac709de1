// Package skeleton discovers the undirected skeleton of a causal graph with
// the PC search: start fully connected and delete every edge whose endpoints
// test conditionally independent given some subset of their neighbors.
//
// Search order (fixed, since it decides which separating set is kept):
//
//	for N := 0 .. V                                  (conditioning-set size)
//	  for (x, y) ascending, x < y, not yet separated
//	    pool := (Neighbors(x) ∪ Neighbors(y)) \ {x, y}   (ascending, current graph)
//	    for z in Combinations(pool, N)                (lexicographic)
//	      if |r(x, y | z)| <= threshold: remove x — y, record z, next pair
//
// Removing edges shrinks later pools, which is what bounds the search. The
// first separating set found for a pair wins and is never overwritten.
//
// The cost is exponential in the neighborhood size; WithMaxConditioningSize
// caps N for larger graphs.
package skeleton
