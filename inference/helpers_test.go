// SPDX-License-Identifier: MIT

package inference_test

import (
	"testing"

	"github.com/katalvlaran/lvfuzzy/expr"
	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/stretchr/testify/require"
)

var qualityInputs = []string{"speed", "food_quality", "ambience"}

// addLevels registers low/mid/high on name over [0,10].
func addLevels(t testing.TB, eng *inference.Engine, name string, labels [3]string) {
	t.Helper()
	require.NoError(t, eng.AddLabel(name, labels[0], membership.MustTrapezoid(0, 0, 3, 5)))
	require.NoError(t, eng.AddLabel(name, labels[1], membership.MustTriangle(3, 5, 7)))
	require.NoError(t, eng.AddLabel(name, labels[2], membership.MustTrapezoid(5, 7, 10, 10)))
}

// happinessRules returns the three reference rules.
func happinessRules() []inference.Rule {
	terms := func(label string) []expr.Expr {
		out := make([]expr.Expr, len(qualityInputs))
		for i, v := range qualityInputs {
			out[i] = expr.Is(v, label)
		}
		return out
	}

	return []inference.Rule{
		inference.NewRule(expr.AnyOf(terms("low")...), inference.Then("happiness", "unhappy")).Named("r1"),
		inference.NewRule(expr.AllOf(terms("mid")...), inference.Then("happiness", "neutral")).Named("r2"),
		inference.NewRule(expr.AllOf(terms("high")...), inference.Then("happiness", "happy")).Named("r3"),
	}
}

// newHappiness builds the reference three-input model with rules in the given order.
func newHappiness(t testing.TB, rules []inference.Rule, opts ...inference.Option) *inference.Engine {
	t.Helper()
	eng := inference.New(opts...)
	for _, v := range qualityInputs {
		require.NoError(t, eng.AddInput(v, 0, 10))
		addLevels(t, eng, v, [3]string{"low", "mid", "high"})
	}
	require.NoError(t, eng.AddOutput("happiness", 0, 10))
	addLevels(t, eng, "happiness", [3]string{"unhappy", "neutral", "happy"})
	for _, r := range rules {
		require.NoError(t, eng.AddRule(r))
	}

	return eng
}

func uniform(x float64) map[string]float64 {
	return map[string]float64{"speed": x, "food_quality": x, "ambience": x}
}
