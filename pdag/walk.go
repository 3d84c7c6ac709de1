// SPDX-License-Identifier: MIT

package pdag

// Reachable reports whether to can be reached from from by repeatedly
// stepping u → v between adjacent vertices for which follow(u, v) is true.
//
// The walk is an iterative depth-first search over (parent, child) steps:
// each vertex is expanded at most once, so cycles terminate. Only the
// boolean is produced; no path is materialized.
//
// Complexity: O(V²) with the dense adjacency scan.
func Reachable(g *Graph, from, to int, follow func(u, v int) bool) bool {
	type step struct{ parent, child int }

	seen := make([]bool, g.n)
	seen[from] = true
	stack := make([]step, 0, g.n)
	for _, nb := range g.Neighbors(from) {
		stack = append(stack, step{from, nb})
	}

	var s step
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !follow(s.parent, s.child) {
			continue
		}
		if s.child == to {
			return true
		}
		if seen[s.child] {
			continue
		}
		seen[s.child] = true
		for _, nb := range g.Neighbors(s.child) {
			stack = append(stack, step{s.child, nb})
		}
	}

	return false
}

// HasMarkedPath reports a directed path from → … → to made only of arrows
// that are also marked in marks.
func HasMarkedPath(g *Graph, marks *Marks, from, to int) bool {
	return Reachable(g, from, to, func(u, v int) bool {
		return g.IsArrow(u, v) && marks.IsMarked(u, v)
	})
}
