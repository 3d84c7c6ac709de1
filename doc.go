// Package causality learns causal structure from continuous observational
// data and checks candidate graphs against that data.
//
// What is causality?
//
//	A small, deterministic, pure-Go implementation of the PC algorithm:
//		• Correlation engine: Pearson plus stratified conditional correlation
//		• Skeleton search: conditional-independence edge removal with separating sets
//		• Orientation: colliders, then Rule 1 / Rule 2 propagation with marked arrows
//		• Feasibility: basis-set independence claims of any graph, checked against data
//
// The subpackages can be used on their own:
//
//	dataset/      validated, immutable, row-major observation table
//	stats/        correlation engine and stratum binning
//	pdag/         three-state edge matrix, marks, marked-path walk
//	skeleton/     PC skeleton search and separating sets
//	orient/       v-structures, Rule 1, Rule 2
//	feasibility/  basis set and short-circuit independence checks
//	config/       YAML configuration with validation
//
// This package chains them:
//
//	g, marks, err := causality.BuildCausalGraph(records)
//	ok, err := causality.IsFeasibleCausalGraph(g, records)
//
// Quick ASCII example (a collider):
//
//	    X     Y
//	     \   /
//	      v v
//	       Z
//
//	X and Y are independent, Z = X + Y + noise. The skeleton keeps X—Z and
//	Y—Z, records ∅ as the separating set of (X, Y), and orientation yields
//	X → Z ← Y.
//
// Every run is single-threaded and deterministic: levels, pairs, candidate
// pools, subsets and strata are all visited in ascending order. The search
// is exponential in neighborhood size; cap it with WithMaxConditioningSize
// for wider data.
//
// Learned graphs are not guaranteed to pass IsFeasibleCausalGraph on their
// own data. Deep conditioning at a narrow bin width leaves mostly singleton
// strata, and with the default (not renormalized) weights the skeleton can
// drop a strong edge that the basis set later contradicts. On a
// five-variable chain extension of the four-variable scenario
// (E = D + noise, 1000 records) this happens for most seeds.
// WithRenormalizedStrata, a wider WithBinWidth or a lower
// WithMaxConditioningSize make the round trip hold in practice.
package causality
