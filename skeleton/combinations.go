// SPDX-License-Identifier: MIT

package skeleton

// Combinations calls yield with every k-element subset of pool, in
// lexicographic order of positions:
// for pool [a b c] and k=2 it yields [a b], [a c], [b c].
// k == 0 yields the empty set once; k < 0 or k > len(pool) yields nothing.
// Iteration stops early when yield returns false.
//
// The slice passed to yield is reused between calls; copy it to retain it.
func Combinations(pool []int, k int, yield func([]int) bool) {
	n := len(pool)
	if k < 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]int, k)

	var i, j int
	for {
		for i = 0; i < k; i++ {
			buf[i] = pool[idx[i]]
		}
		if !yield(buf) {
			return
		}

		// Advance: find the rightmost position that can still move right.
		i = k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j = i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
