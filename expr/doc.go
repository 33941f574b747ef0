// SPDX-License-Identifier: MIT

// Package expr is the fuzzy proposition tree used as a rule antecedent.
//
// A tree is built from four node kinds:
//
//	Term{Variable, Label}  μ_label(x_variable)
//	And{Left, Right}       min(left, right)
//	Or{Left, Right}        max(left, right)
//	Not{X}                 1 - x
//
// These are the Zadeh min/max operators; there is no product or
// probabilistic-sum alternative.
//
// Evaluation is a pure recursive fold: Eval asks a Resolver for the degree of
// each Term and combines the results. The tree holds no variable state, so
// one tree can be evaluated concurrently against different resolvers.
//
//	e := expr.AnyOf(
//	  expr.Is("speed", "slow"),
//	  expr.Is("food_quality", "poor"),
//	  expr.Is("ambience", "bad"),
//	)
//	d, err := e.Eval(resolver)
package expr
