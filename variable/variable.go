// SPDX-License-Identifier: MIT

package variable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/universe"
)

// Sentinel errors for variable construction and lookup.
var (
	// ErrEmptyName indicates a variable was created without a name.
	ErrEmptyName = errors.New("variable: name is empty")

	// ErrBadUniverse indicates a zero-value (unvalidated) Universe.
	ErrBadUniverse = errors.New("variable: universe is not initialized")

	// ErrEmptyLabel indicates AddLabel was called with "".
	ErrEmptyLabel = errors.New("variable: label is empty")

	// ErrNilMembership indicates AddLabel was called with a nil function.
	ErrNilMembership = errors.New("variable: membership function is nil")

	// ErrDuplicateLabel indicates the label already exists on the variable.
	ErrDuplicateLabel = errors.New("variable: duplicate label")

	// ErrUnknownLabel indicates the label does not exist on the variable.
	ErrUnknownLabel = errors.New("variable: unknown label")

	// ErrFrozen indicates a mutation after the variable was frozen.
	ErrFrozen = errors.New("variable: variable is frozen")
)

// Kind distinguishes inputs from outputs.
type Kind int

const (
	// Antecedent variables receive crisp inputs.
	Antecedent Kind = iota

	// Consequent variables are produced by defuzzification.
	Consequent
)

// String returns "antecedent" or "consequent".
func (k Kind) String() string {
	if k == Consequent {
		return "consequent"
	}

	return "antecedent"
}

// Option configures a Variable at creation.
type Option func(*Variable)

// WithClipping clamps crisp values to the universe bounds before fuzzifying.
func WithClipping() Option {
	return func(v *Variable) { v.clip = true }
}

// Variable is a linguistic variable. Use New to create one.
type Variable struct {
	mu sync.RWMutex // guards labels and frozen

	name   string
	kind   Kind
	u      universe.Universe
	clip   bool
	frozen bool

	labels map[string]membership.Func
}

// New creates an empty variable over u.
//
// Errors:
//   - ErrEmptyName:   name == "".
//   - ErrBadUniverse: u is the zero Universe.
func New(name string, kind Kind, u universe.Universe, opts ...Option) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if u.IsZero() {
		return nil, fmt.Errorf("%q: %w", name, ErrBadUniverse)
	}
	v := &Variable{
		name:   name,
		kind:   kind,
		u:      u,
		labels: make(map[string]membership.Func),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Kind returns Antecedent or Consequent.
func (v *Variable) Kind() Kind { return v.kind }

// Universe returns the sampling universe.
func (v *Variable) Universe() universe.Universe { return v.u }

// Clipping reports whether inputs are clamped to the universe.
func (v *Variable) Clipping() bool { return v.clip }

// AddLabel registers fn under label.
//
// Errors:
//   - ErrEmptyLabel, ErrNilMembership: invalid arguments.
//   - ErrDuplicateLabel: label already registered.
//   - ErrFrozen: the variable was frozen.
func (v *Variable) AddLabel(label string, fn membership.Func) error {
	if label == "" {
		return fmt.Errorf("%s: %w", v.name, ErrEmptyLabel)
	}
	if fn == nil {
		return fmt.Errorf("%s[%s]: %w", v.name, label, ErrNilMembership)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.frozen {
		return fmt.Errorf("%s[%s]: %w", v.name, label, ErrFrozen)
	}
	if _, exists := v.labels[label]; exists {
		return fmt.Errorf("%s[%s]: %w", v.name, label, ErrDuplicateLabel)
	}
	v.labels[label] = fn

	return nil
}

// Freeze makes the variable immutable. Idempotent.
func (v *Variable) Freeze() {
	v.mu.Lock()
	v.frozen = true
	v.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (v *Variable) Frozen() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.frozen
}

// HasLabel reports whether label is registered.
func (v *Variable) HasLabel(label string) bool {
	_, ok := v.Membership(label)

	return ok
}

// Membership returns the function registered under label.
func (v *Variable) Membership(label string) (membership.Func, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	fn, ok := v.labels[label]

	return fn, ok
}

// Labels returns all labels in ascending order.
func (v *Variable) Labels() []string {
	v.mu.RLock()
	out := make([]string, 0, len(v.labels))
	for l := range v.labels {
		out = append(out, l)
	}
	v.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Fuzzify returns the degree of x in label.
// With clipping enabled x is first clamped to the universe.
//
// Errors:
//   - ErrUnknownLabel: label not registered.
func (v *Variable) Fuzzify(label string, x float64) (float64, error) {
	fn, ok := v.Membership(label)
	if !ok {
		return 0, fmt.Errorf("%s[%s]: %w", v.name, label, ErrUnknownLabel)
	}
	if v.clip {
		x = v.u.Clamp(x)
	}

	return fn.Degree(x), nil
}

// FuzzifyAll returns the degree of x in every label.
func (v *Variable) FuzzifyAll(x float64) map[string]float64 {
	if v.clip {
		x = v.u.Clamp(x)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[string]float64, len(v.labels))
	for l, fn := range v.labels {
		out[l] = fn.Degree(x)
	}

	return out
}

// Sample evaluates label's membership function at every universe point.
//
// Errors:
//   - ErrUnknownLabel: label not registered.
func (v *Variable) Sample(label string) ([]float64, error) {
	fn, ok := v.Membership(label)
	if !ok {
		return nil, fmt.Errorf("%s[%s]: %w", v.name, label, ErrUnknownLabel)
	}

	return membership.Sample(fn, v.u), nil
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s %s %v %v", v.kind, v.name, v.u, v.Labels())
}
