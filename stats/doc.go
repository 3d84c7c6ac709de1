// Package stats implements the correlation engine behind every independence
// test: Pearson correlation and a stratified conditional correlation.
//
// Conditional correlation is approximated by recursive stratification rather
// than a closed-form partial correlation. For r(x, y | z1, z2, …):
//
//  1. bin every record on z1 with Bin(v) = trunc(v·k), k = 1/binWidth, truncated
//     toward zero (with the 0.1 default this is trunc(10·v)) and kept as a
//     float64 key so any finite magnitude gets its own bin;
//  2. for each bin holding at least two records, recurse on r(x, y | z2, …)
//     restricted to that bin;
//  3. combine the per-bin values weighted by binSize / parentSize.
//
// Bins with fewer than two records are skipped. By default the weights are
// not renormalized over the retained bins, so sparse strata pull the result
// toward zero; WithRenormalizedStrata divides by the retained weight instead.
// A degenerate computation (constant variable, no usable stratum) yields 0,
// which independence tests read as "independent".
//
// Cost grows with both the conditioning-set size and the number of distinct
// bins; WithMaxConditioning bounds the recursion depth explicitly.
//
// Determinism: strata are visited in ascending bin order and rows keep their
// record order, so results are bit-stable for a fixed input.
package stats
