// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/defuzz"
	"github.com/katalvlaran/lvfuzzy/expr"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/universe"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// Engine owns the linguistic variables and the ordered rule base of one
// Mamdani model.
//
// Construction (Add*) is expected to run on one goroutine; it is guarded by
// mu so misuse cannot corrupt state. The first Evaluate (or Freeze) ends
// construction; from then on the model is immutable and Evaluate may run
// concurrently without further coordination.
type Engine struct {
	mu       sync.RWMutex // guards everything below until frozen
	frozen   bool
	buildErr error // first construction error; poisons Evaluate

	// configuration
	name       string
	resolution float64
	method     defuzz.Method
	clip       bool
	log        *zap.Logger
	reg        prometheus.Registerer
	metrics    *engineMetrics

	// model
	vars     map[string]*variable.Variable
	inputs   []string // registration order
	outputs  []string // registration order
	rules    []Rule
	required map[string]struct{} // inputs referenced by any antecedent

	// derived at Freeze
	points  map[string][]float64    // output name → universe samples
	sampled map[expr.Term][]float64 // consequent term → μ over its universe
}

// New creates an empty engine.
// Defaults: DefaultResolution, Centroid, no clipping, no-op logger, no metrics.
func New(opts ...Option) *Engine {
	e := &Engine{
		name:       DefaultName,
		resolution: DefaultResolution,
		method:     DefaultMethod,
		log:        zap.NewNop(),
		vars:       make(map[string]*variable.Variable),
		required:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.reg != nil {
		e.metrics = newEngineMetrics(e.reg, e.name)
	}
	e.log = e.log.With(zap.String("model", e.name))

	return e
}

// Name returns the engine name.
func (e *Engine) Name() string { return e.name }

// Resolution returns the default universe step Δ.
func (e *Engine) Resolution() float64 { return e.resolution }

// Method returns the defuzzification method.
func (e *Engine) Method() defuzz.Method { return e.method }

// AddInput registers an antecedent variable over [lo, hi] at the engine resolution.
func (e *Engine) AddInput(name string, lo, hi float64) error {
	var opts []variable.Option
	if e.clip {
		opts = append(opts, variable.WithClipping())
	}

	return e.build("add input "+name, func() error {
		return e.addNew(name, variable.Antecedent, lo, hi, opts...)
	})
}

// AddOutput registers a consequent variable over [lo, hi] at the engine resolution.
func (e *Engine) AddOutput(name string, lo, hi float64) error {
	return e.build("add output "+name, func() error {
		return e.addNew(name, variable.Consequent, lo, hi)
	})
}

func (e *Engine) addNew(name string, kind variable.Kind, lo, hi float64, opts ...variable.Option) error {
	u, err := universe.New(lo, hi, e.resolution)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	v, err := variable.New(name, kind, u, opts...)
	if err != nil {
		return err
	}

	return e.addVariable(v)
}

// AddVariable takes ownership of a prepared variable (custom universe or
// options). The variable is frozen together with the engine.
//
// Errors:
//   - ErrNilVariable, ErrDuplicateVariable, ErrFrozen.
func (e *Engine) AddVariable(v *variable.Variable) error {
	return e.build("add variable", func() error { return e.addVariable(v) })
}

func (e *Engine) addVariable(v *variable.Variable) error {
	if v == nil {
		return ErrNilVariable
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozen {
		return fmt.Errorf("add variable %q: %w", v.Name(), ErrFrozen)
	}
	if _, exists := e.vars[v.Name()]; exists {
		return fmt.Errorf("%q: %w", v.Name(), ErrDuplicateVariable)
	}
	e.vars[v.Name()] = v
	if v.Kind() == variable.Consequent {
		e.outputs = append(e.outputs, v.Name())
	} else {
		e.inputs = append(e.inputs, v.Name())
	}

	return nil
}

// AddLabel registers fn as label on the named variable.
//
// Errors:
//   - ErrUnknownVariable, ErrDuplicateLabel, ErrFrozen, and the
//     argument errors of variable.AddLabel.
func (e *Engine) AddLabel(name, label string, fn membership.Func) error {
	return e.build("add label "+name+"["+label+"]", func() error { return e.addLabel(name, label, fn) })
}

func (e *Engine) addLabel(name, label string, fn membership.Func) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozen {
		return fmt.Errorf("add label %s[%s]: %w", name, label, ErrFrozen)
	}
	v, ok := e.vars[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}

	return v.AddLabel(label, fn)
}

// AddRule validates r against the registered variables and appends it.
//
// Every antecedent term must name an input variable and one of its labels;
// every consequent must name a distinct output variable and one of its labels.
// On error the rule is not added and the engine records the error (see Err).
//
// Errors:
//   - ErrNilAntecedent, ErrNoConsequent, ErrUnknownVariable, ErrUnknownLabel,
//     ErrNotInput, ErrNotOutput, ErrDuplicateConsequent, ErrBadWeight, ErrFrozen.
func (e *Engine) AddRule(r Rule) error {
	return e.build("add rule", func() error { return e.addRule(r) })
}

func (e *Engine) addRule(r Rule) error {
	if err := expr.Validate(r.Antecedent); err != nil {
		return fmt.Errorf("%v: %w", r, ErrNilAntecedent)
	}
	if len(r.Consequents) == 0 {
		return fmt.Errorf("%v: %w", r, ErrNoConsequent)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozen {
		return fmt.Errorf("add rule: %w", ErrFrozen)
	}

	terms := r.Antecedent.Terms(nil)
	for _, t := range terms {
		if err := e.checkTerm(t, variable.Antecedent); err != nil {
			return fmt.Errorf("antecedent of %v: %w", r, err)
		}
	}
	seen := make(map[string]struct{}, len(r.Consequents))
	for _, c := range r.Consequents {
		if err := e.checkTerm(c.Term, variable.Consequent); err != nil {
			return fmt.Errorf("consequent of %v: %w", r, err)
		}
		if _, dup := seen[c.Term.Variable]; dup {
			return fmt.Errorf("%v: %q: %w", r, c.Term.Variable, ErrDuplicateConsequent)
		}
		seen[c.Term.Variable] = struct{}{}
		if w := c.weight(); math.IsNaN(w) || w <= 0 || w > 1 {
			return fmt.Errorf("%v: %g: %w", r, c.Weight, ErrBadWeight)
		}
	}

	for _, t := range terms {
		e.required[t.Variable] = struct{}{}
	}
	e.rules = append(e.rules, r.clone())

	return nil
}

// build runs one construction step. A frozen engine rejects the step with
// ErrFrozen before its arguments are inspected; otherwise the first failure
// is kept (see Err).
func (e *Engine) build(op string, step func() error) error {
	if e.Frozen() {
		return fmt.Errorf("%s: %w", op, ErrFrozen)
	}

	return e.record(step())
}

// record keeps the first construction error. Nothing is recorded once the
// engine is frozen: a frozen model stays evaluable whatever is added later.
func (e *Engine) record(err error) error {
	if err == nil || errors.Is(err, ErrFrozen) {
		return err
	}
	e.mu.Lock()
	if e.buildErr == nil && !e.frozen {
		e.buildErr = err
	}
	e.mu.Unlock()

	return err
}

// Err returns the first construction error, if any. A model with a
// construction error cannot be evaluated.
func (e *Engine) Err() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.buildErr
}

// checkTerm resolves t to a variable of the wanted kind and one of its labels.
// Caller holds mu.
func (e *Engine) checkTerm(t expr.Term, want variable.Kind) error {
	v, ok := e.vars[t.Variable]
	if !ok {
		return fmt.Errorf("%q: %w", t.Variable, ErrUnknownVariable)
	}
	if v.Kind() != want {
		if want == variable.Antecedent {
			return fmt.Errorf("%q: %w", t.Variable, ErrNotInput)
		}

		return fmt.Errorf("%q: %w", t.Variable, ErrNotOutput)
	}
	if !v.HasLabel(t.Label) {
		return fmt.Errorf("%v: %w", t, ErrUnknownLabel)
	}

	return nil
}

// Freeze ends model construction. It freezes every variable and samples each
// consequent membership function over its output universe once, so Evaluate
// only clips and combines. Idempotent.
func (e *Engine) Freeze() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozen {
		return
	}
	e.points = make(map[string][]float64, len(e.outputs))
	e.sampled = make(map[expr.Term][]float64)
	for _, name := range e.outputs {
		e.points[name] = e.vars[name].Universe().Points()
	}
	for _, r := range e.rules {
		for _, c := range r.Consequents {
			if _, ok := e.sampled[c.Term]; ok {
				continue
			}
			// Labels were checked in AddRule and variables cannot lose them.
			ys, _ := e.vars[c.Term.Variable].Sample(c.Term.Label)
			e.sampled[c.Term] = ys
		}
	}
	for _, v := range e.vars {
		v.Freeze()
	}
	e.frozen = true

	e.log.Debug("model frozen",
		zap.Strings("inputs", e.inputs),
		zap.Strings("outputs", e.outputs),
		zap.Int("rules", len(e.rules)),
		zap.Stringer("method", e.method))
}

// Frozen reports whether construction has ended.
func (e *Engine) Frozen() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.frozen
}

// Variable returns the named variable (diagnostics; read-only use).
func (e *Engine) Variable(name string) (*variable.Variable, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[name]

	return v, ok
}

// Inputs returns input variable names in registration order.
func (e *Engine) Inputs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]string(nil), e.inputs...)
}

// Outputs returns output variable names in registration order.
func (e *Engine) Outputs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]string(nil), e.outputs...)
}

// RequiredInputs returns, sorted, the inputs referenced by at least one rule.
func (e *Engine) RequiredInputs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.required))
	for name := range e.required {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Rules returns a copy of the rule base in evaluation order.
func (e *Engine) Rules() []Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Rule, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.clone()
	}

	return out
}
