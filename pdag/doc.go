// Package pdag models the partially directed graphs produced by causal
// structure learning: a V×V matrix of three-state edge cells plus the
// companion "marked arrow" matrix used by the orientation rules.
//
// Cell (i, j) holds one of:
//
//	NoEdge      no mark from i toward j
//	Undirected  edge present, direction from i undetermined
//	Arrow       arrowhead from i into j
//
// For every unordered pair the two cells are kept jointly consistent:
//
//	(Undirected, Undirected)  i — j
//	(NoEdge, NoEdge)          not adjacent
//	(Arrow, NoEdge)           i → j
//
// Mutators (Connect, Orient, Disconnect) write both cells at once, so a graph
// built through them can never hold an Arrow facing an Undirected cell.
// FromMatrix and Validate check the invariant for graphs supplied from
// outside.
//
// Neighbors and Edges always return indices in ascending order, which fixes
// the enumeration order of every algorithm built on top.
package pdag
