// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/defuzz"
	"github.com/katalvlaran/lvfuzzy/expr"
	"github.com/katalvlaran/lvfuzzy/internal/metrics"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// Evaluate runs one Mamdani inference over the crisp inputs.
//
// Implementation:
//   - Stage 1: freeze the model on first use and reject bad assignments:
//     unknown names (ErrUnknownVariable), outputs (ErrNotInput), NaN
//     (ErrBadInput), and inputs a rule needs but inputs lacks
//     (ErrUnboundVariable). Nothing is evaluated on rejection.
//   - Stage 2: fire rules in order. α = antecedent degree; each consequent is
//     clipped at min(α·weight, μ(s)) for every output sample s (Mamdani
//     min implication) and folded into its output region with max. Rules with
//     α = 0 are folded too.
//   - Stage 3: defuzzify every output region. An empty region is recorded in
//     Result.Failures and does not affect other outputs.
//
// The returned error is non-nil only for Stage 1 failures or a model whose
// construction failed (ErrInvalidModel); per-output failures live in the
// Result.
//
// Concurrency:
//   - Safe for concurrent use. Every call allocates its own regions.
//
// Complexity:
//   - Time O(|rules|·Σ|universe|), Space O(Σ|universe|).
func (e *Engine) Evaluate(inputs map[string]float64) (*Result, error) {
	if !e.Frozen() {
		e.Freeze()
	}
	t0 := time.Now()

	e.mu.RLock()
	defer e.mu.RUnlock()

	e.metrics.started()
	defer e.metrics.observe(t0)

	if e.buildErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, e.buildErr)
	}
	if err := e.checkInputs(inputs); err != nil {
		return nil, err
	}

	resolver := expr.ResolverFunc(func(name, label string) (float64, error) {
		x, ok := inputs[name]
		if !ok {
			return 0, fmt.Errorf("%q: %w", name, ErrUnboundVariable)
		}

		return e.vars[name].Fuzzify(label, x)
	})

	regions := make(map[string][]float64, len(e.outputs))
	for _, name := range e.outputs {
		regions[name] = make([]float64, len(e.points[name]))
	}

	strengths := make([]float64, len(e.rules))
	for i, r := range e.rules {
		alpha, err := r.Antecedent.Eval(resolver)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		strengths[i] = alpha
		if alpha > 0 {
			e.metrics.ruleFired()
		}
		if ce := e.log.Check(zap.DebugLevel, "rule fired"); ce != nil {
			ce.Write(zap.Int("rule", i), zap.Stringer("def", r), zap.Float64("strength", alpha))
		}
		for _, c := range r.Consequents {
			implicate(regions[c.Term.Variable], e.sampled[c.Term], alpha*c.Weight)
		}
	}

	res := &Result{
		Outputs:   make(map[string]float64, len(e.outputs)),
		Failures:  make(map[string]error),
		Regions:   make(map[string]Region, len(e.outputs)),
		Strengths: strengths,
	}
	for _, name := range e.outputs {
		pts := append([]float64(nil), e.points[name]...)
		mu := regions[name]
		res.Regions[name] = Region{Points: pts, Degrees: mu}

		v, err := defuzz.Defuzzify(e.method, pts, mu)
		if err != nil {
			res.Failures[name] = fmt.Errorf("%q: %w", name, err)
			e.metrics.output(name, false)
			e.log.Warn("no crisp value for output", zap.String("output", name), zap.Error(err))

			continue
		}
		res.Outputs[name] = v
		e.metrics.output(name, true)
		if ce := e.log.Check(zap.DebugLevel, "output defuzzified"); ce != nil {
			ce.Write(zap.String("output", name), zap.Float64("value", v), zap.Stringer("method", e.method))
		}
	}

	return res, nil
}

// Compute evaluates inputs and returns the crisp value of a single output.
//
// Errors:
//   - ErrUnknownVariable / ErrNotOutput for a bad output name;
//   - any Evaluate error;
//   - ErrEmptyAggregateRegion when output has no crisp value.
func (e *Engine) Compute(inputs map[string]float64, output string) (float64, error) {
	v, ok := e.Variable(output)
	if !ok {
		return 0, fmt.Errorf("%q: %w", output, ErrUnknownVariable)
	}
	if v.Kind() != variable.Consequent {
		return 0, fmt.Errorf("%q: %w", output, ErrNotOutput)
	}
	res, err := e.Evaluate(inputs)
	if err != nil {
		return 0, err
	}

	return res.Output(output)
}

// checkInputs validates an assignment. Caller holds mu (read).
func (e *Engine) checkInputs(inputs map[string]float64) error {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v, ok := e.vars[name]
		if !ok {
			e.metrics.reject(metrics.ReasonUnknown)
			return fmt.Errorf("input %q: %w", name, ErrUnknownVariable)
		}
		if v.Kind() != variable.Antecedent {
			e.metrics.reject(metrics.ReasonUnknown)
			return fmt.Errorf("input %q: %w", name, ErrNotInput)
		}
		if math.IsNaN(inputs[name]) {
			e.metrics.reject(metrics.ReasonInput)
			return fmt.Errorf("input %q: %w", name, ErrBadInput)
		}
	}

	var missing []string
	for name := range e.required {
		if _, ok := inputs[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		e.metrics.reject(metrics.ReasonUnbound)
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrUnboundVariable)
	}

	return nil
}

// implicate folds min(alpha, mu[s]) into region with point-wise max.
func implicate(region, mu []float64, alpha float64) {
	for s, d := range mu {
		if c := min(alpha, d); c > region[s] {
			region[s] = c
		}
	}
}
