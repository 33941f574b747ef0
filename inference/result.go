// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Region is an aggregated fuzzy output region: Degrees[i] is the membership
// of Points[i] in the combined consequent set.
type Region struct {
	Points  []float64
	Degrees []float64
}

// Mass returns Σ Degrees; zero means the region is empty.
func (r Region) Mass() float64 {
	if len(r.Degrees) == 0 {
		return 0
	}

	return floats.Sum(r.Degrees)
}

// Result is the outcome of one Evaluate call. It is owned by the caller.
type Result struct {
	// Outputs holds the crisp value of every successfully defuzzified output.
	Outputs map[string]float64

	// Failures holds, per output, why no crisp value exists
	// (ErrEmptyAggregateRegion).
	Failures map[string]error

	// Regions holds every output's aggregated region, including empty ones.
	Regions map[string]Region

	// Strengths holds each rule's firing strength, in rule order.
	Strengths []float64
}

// Output returns the crisp value of name, or the reason it has none.
func (r *Result) Output(name string) (float64, error) {
	if v, ok := r.Outputs[name]; ok {
		return v, nil
	}
	if err, ok := r.Failures[name]; ok {
		return 0, err
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
}

// Err joins all per-output failures in name order; nil when every output
// produced a value.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Failures))
	for name := range r.Failures {
		names = append(names, name)
	}
	sort.Strings(names)
	errs := make([]error, len(names))
	for i, name := range names {
		errs[i] = r.Failures[name]
	}

	return errors.Join(errs...)
}
