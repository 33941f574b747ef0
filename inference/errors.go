// SPDX-License-Identifier: MIT
// Package inference: sentinel error set.
//
// Build-time errors are returned by the Add* methods and leave the engine
// unchanged. Evaluation-time errors are scoped to one Evaluate call: a
// missing input fails the whole call, an empty aggregate region fails only
// its output (see Result.Failures).
//
// Callers match with errors.Is; every returned error wraps one of these with
// the offending variable, label or rule in the message.

package inference

import (
	"errors"

	"github.com/katalvlaran/lvfuzzy/defuzz"
	"github.com/katalvlaran/lvfuzzy/variable"
)

var (
	// ErrDuplicateVariable indicates a variable name is already registered.
	ErrDuplicateVariable = errors.New("inference: duplicate variable")

	// ErrNilVariable indicates AddVariable(nil).
	ErrNilVariable = errors.New("inference: variable is nil")

	// ErrUnknownVariable indicates a name that resolves to no variable.
	ErrUnknownVariable = errors.New("inference: unknown variable")

	// ErrNotInput indicates an output variable used where an input is required
	// (rule antecedent, crisp assignment).
	ErrNotInput = errors.New("inference: variable is not an input")

	// ErrNotOutput indicates an input variable used as a rule consequent.
	ErrNotOutput = errors.New("inference: variable is not an output")

	// ErrNilAntecedent indicates a rule without an antecedent or with a nil node.
	ErrNilAntecedent = errors.New("inference: rule antecedent is nil")

	// ErrNoConsequent indicates a rule without consequent terms.
	ErrNoConsequent = errors.New("inference: rule has no consequent")

	// ErrDuplicateConsequent indicates two consequents of one rule target the
	// same output variable.
	ErrDuplicateConsequent = errors.New("inference: rule targets an output twice")

	// ErrBadWeight indicates a consequent weight outside (0,1].
	ErrBadWeight = errors.New("inference: consequent weight must be in (0,1]")

	// ErrFrozen indicates a model mutation after the first evaluation or Freeze.
	ErrFrozen = errors.New("inference: model is frozen")

	// ErrInvalidModel indicates Evaluate on a model whose construction failed.
	ErrInvalidModel = errors.New("inference: model failed to build")

	// ErrUnboundVariable indicates an input referenced by a rule has no crisp value.
	ErrUnboundVariable = errors.New("inference: unbound input variable")

	// ErrBadInput indicates a NaN crisp input.
	ErrBadInput = errors.New("inference: crisp input is NaN")
)

// Aliases of the lower-level sentinels so callers need only this package.
var (
	// ErrDuplicateLabel is variable.ErrDuplicateLabel.
	ErrDuplicateLabel = variable.ErrDuplicateLabel

	// ErrUnknownLabel is variable.ErrUnknownLabel.
	ErrUnknownLabel = variable.ErrUnknownLabel

	// ErrEmptyAggregateRegion is defuzz.ErrEmptyRegion: no rule produced any
	// membership mass for an output, so its crisp value is undefined.
	ErrEmptyAggregateRegion = defuzz.ErrEmptyRegion
)
