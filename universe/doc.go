// SPDX-License-Identifier: MIT

// Package universe models the discourse of a linguistic variable: a closed
// real interval [lo, hi] sampled at a fixed resolution Δ.
//
// 🚀 What is a universe?
//
//	Every fuzzy set in lvfuzzy is a total function over the reals, but the
//	aggregated output region of an inference run is a sampled array. The
//	Universe fixes where those samples lie:
//	  • sample i is lo + i·Δ
//	  • n = floor((hi-lo)/Δ) + 1 samples, fixed for the value's lifetime
//
// ⚙️ Usage:
//
//	u, err := universe.New(0, 10, 0.5)
//	if err != nil {
//	  // ErrBadBounds or ErrBadStep
//	}
//	xs := u.Points() // [0 0.5 1 ... 10]
//
// Resolution trades precision for speed: defuzzification cost is O(n) per
// output, and the rectangle-rule centroid error shrinks with Δ.
package universe
