// SPDX-License-Identifier: MIT

// Package lvfuzzy is a small, dependency-light Mamdani fuzzy inference
// toolkit: declare linguistic variables, write IF/THEN rules over them and
// turn crisp inputs into crisp outputs.
//
// 🚀 What is lvfuzzy?
//
//	A thread-safe library that brings together:
//		• Universes: discretized ranges [lo, hi] with an explicit step
//		• Membership functions: triangular and trapezoidal shapes
//		• Linguistic variables: named labels over a universe
//		• Rule expressions: AND (min), OR (max), NOT (1-x) trees
//		• Inference: min implication, max aggregation, defuzzification
//		• Defuzzifiers: centroid, bisector, mean/smallest/largest of maximum
//
// ✨ Why choose lvfuzzy?
//
//   - Build once, evaluate many: a frozen engine is safe for concurrent use
//   - Explicit errors: unbound inputs and empty regions are reported, never NaN
//   - Observable: optional zap logging and Prometheus metrics per engine
//
// Packages:
//
//	universe/            discretized ranges
//	membership/          triangle & trapezoid shapes, sampling
//	variable/            linguistic variables (antecedent / consequent)
//	expr/                rule antecedent expression trees
//	defuzz/              defuzzification methods
//	inference/           the Mamdani engine, rules and results
//	models/restaurant/   the reference customer-happiness model
//	cmd/lvfuzzy/         eval, plot and bench command line
//
// Quick example:
//
//	eng, _ := restaurant.Build()
//	score, _ := eng.Compute(map[string]float64{
//		"speed": 6, "food_quality": 8, "ambience": 7,
//	}, "happiness")
//
//	go get github.com/katalvlaran/lvfuzzy
package lvfuzzy
