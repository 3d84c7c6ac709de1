// Package orient turns a PC skeleton into a partially directed graph.
//
// Step 1, colliders: for every z and every pair of its neighbors x, y that are
// not adjacent to each other, if z is absent from the recorded separating set
// of (x, y), orient x → z ← y.
//
// Step 2, propagation to a fixed point, alternating:
//
//   - Rule 1 (no new colliders): a → c — b with a, b non-adjacent becomes
//     a → c → b; the new arrow is marked on both cells of (c, b).
//   - Rule 2 (no cycles): an undirected a — b becomes a → b when a directed
//     path a → … → b of marked arrows exists.
//
// Marks are threaded explicitly through every rule; nothing is read from
// package state. The result may keep undirected edges: orientation is
// best-effort, not complete.
package orient
