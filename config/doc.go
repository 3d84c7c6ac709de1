// Package config holds the tunable parameters of the causal learners in a
// YAML-loadable form:
//
//	independence_threshold: 0.1
//	bin_width: 0.1
//	max_conditioning_size: -1
//	renormalize_strata: false
//
// Unknown keys are rejected. A missing file yields Default().
package config
