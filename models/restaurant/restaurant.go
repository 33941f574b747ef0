// SPDX-License-Identifier: MIT

package restaurant

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/expr"
	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/membership"
)

// Variable names.
const (
	Speed       = "speed"
	FoodQuality = "food_quality"
	Ambience    = "ambience"
	Happiness   = "happiness"
)

// Score range shared by every variable.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Category names returned by Category.
const (
	Unhappy = "Unhappy"
	Neutral = "Neutral"
	Happy   = "Happy"
)

// Inputs lists the antecedent names in prompt order.
var Inputs = []string{Speed, FoodQuality, Ambience}

// labels maps every variable to its low, mid and high label.
var labels = map[string][3]string{
	Speed:       {"slow", "average", "fast"},
	FoodQuality: {"poor", "average", "excellent"},
	Ambience:    {"bad", "okay", "good"},
	Happiness:   {"unhappy", "neutral", "happy"},
}

// Labels returns the low, mid and high label of a variable.
func Labels(name string) ([3]string, bool) {
	l, ok := labels[name]
	return l, ok
}

// InRange reports whether x is a valid score.
func InRange(x float64) bool { return x >= MinScore && x <= MaxScore }

// Build assembles and freezes the model. opts are passed to inference.New,
// so callers may set a logger, metrics, resolution or defuzzifier.
func Build(opts ...inference.Option) (*inference.Engine, error) {
	eng := inference.New(append([]inference.Option{inference.WithName("restaurant")}, opts...)...)

	for _, name := range Inputs {
		_ = eng.AddInput(name, MinScore, MaxScore)
	}
	_ = eng.AddOutput(Happiness, MinScore, MaxScore)

	for _, name := range append(Inputs[:len(Inputs):len(Inputs)], Happiness) {
		l := labels[name]
		_ = eng.AddLabel(name, l[0], membership.MustTrapezoid(0, 0, 3, 5))
		_ = eng.AddLabel(name, l[1], membership.MustTriangle(3, 5, 7))
		_ = eng.AddLabel(name, l[2], membership.MustTrapezoid(5, 7, 10, 10))
	}

	for _, r := range Rules() {
		_ = eng.AddRule(r)
	}
	if err := eng.Err(); err != nil {
		return nil, fmt.Errorf("restaurant: %w", err)
	}
	eng.Freeze()

	return eng, nil
}

// Rules returns the three model rules in evaluation order.
func Rules() []inference.Rule {
	level := func(i int) []expr.Expr {
		out := make([]expr.Expr, len(Inputs))
		for j, name := range Inputs {
			out[j] = expr.Is(name, labels[name][i])
		}
		return out
	}
	out := labels[Happiness]

	return []inference.Rule{
		inference.NewRule(expr.AnyOf(level(0)...), inference.Then(Happiness, out[0])).Named("r1"),
		inference.NewRule(expr.AllOf(level(1)...), inference.Then(Happiness, out[1])).Named("r2"),
		inference.NewRule(expr.AllOf(level(2)...), inference.Then(Happiness, out[2])).Named("r3"),
	}
}

// Category buckets a happiness score: ≤3 Unhappy, ≤7 Neutral, else Happy.
func Category(score float64) string {
	switch {
	case score <= 3:
		return Unhappy
	case score <= 7:
		return Neutral
	default:
		return Happy
	}
}
