// SPDX-License-Identifier: MIT

// Package defuzz reduces a sampled fuzzy region to one crisp number.
//
// Methods (all over the sample points xs with degrees mu):
//
//	Centroid           Σ xs·mu / Σ mu            (default; rectangle rule)
//	Bisector           first xs[k] where the cumulative mass reaches half of Σ mu
//	MeanOfMaximum      mean of xs where mu is maximal
//	SmallestOfMaximum  min of xs where mu is maximal
//	LargestOfMaximum   max of xs where mu is maximal
//
// A region with Σ mu == 0 has no defined crisp value: every method returns
// ErrEmptyRegion instead of 0, NaN or a midpoint.
//
// Precision follows the universe resolution Δ: the centroid is a rectangle
// rule approximation of ∫x·μ(x)dx / ∫μ(x)dx with error O(Δ).
package defuzz
