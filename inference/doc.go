// SPDX-License-Identifier: MIT

// Package inference implements a Mamdani fuzzy inference engine.
//
// 🚀 Pipeline
//
//	crisp inputs ──fuzzify──▶ rule antecedents (min/max/1-x)
//	             ──clip────▶ consequent sets at the firing strength
//	             ──max─────▶ one aggregated region per output
//	             ──defuzz──▶ crisp outputs (centroid by default)
//
// ✨ Guarantees
//   - Build-time validation: every rule term resolves to a known variable and
//     label when AddRule is called. The first construction error is kept
//     (Err) and makes Evaluate fail with ErrInvalidModel.
//   - Strict evaluation: a rule input without a crisp value fails the whole
//     call with ErrUnboundVariable; nothing is default-filled.
//   - No silent 0/0: an output whose aggregated region is empty is reported
//     in Result.Failures with ErrEmptyAggregateRegion; other outputs of the
//     same call still get values.
//   - Immutable after the first Evaluate (or Freeze), hence safe for
//     concurrent evaluation without locking on the caller's side.
//
// ⚙️ Usage:
//
//	eng := inference.New(inference.WithResolution(0.5))
//	_ = eng.AddInput("speed", 0, 10)
//	_ = eng.AddOutput("happiness", 0, 10)
//	_ = eng.AddLabel("speed", "slow", membership.MustTrapezoid(0, 0, 3, 5))
//	_ = eng.AddLabel("happiness", "unhappy", membership.MustTrapezoid(0, 0, 3, 5))
//	_ = eng.AddRule(inference.NewRule(expr.Is("speed", "slow"), inference.Then("happiness", "unhappy")))
//
//	res, err := eng.Evaluate(map[string]float64{"speed": 2})
//	h, err := res.Output("happiness")
//
// Diagnostics: Result.Regions exposes every aggregated region and
// Result.Strengths every rule's firing strength; variable.Sample exposes the
// membership functions. Optional zap logging (WithLogger) and Prometheus
// metrics (WithMetrics) observe evaluations without affecting results.
package inference
