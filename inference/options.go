// SPDX-License-Identifier: MIT

package inference

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/defuzz"
)

// Defaults.
const (
	// DefaultResolution is the universe step used by AddInput/AddOutput.
	DefaultResolution = 1.0

	// DefaultMethod is the defuzzification method.
	DefaultMethod = defuzz.Centroid

	// DefaultName labels the engine in logs and metrics.
	DefaultName = "default"
)

const (
	panicResolutionInvalid = "inference: WithResolution: step must be finite and > 0"
	panicMethodInvalid     = "inference: WithDefuzzifier: unknown method"
	panicLoggerNil         = "inference: WithLogger(nil)"
	panicRegistererNil     = "inference: WithMetrics(nil)"
	panicNameEmpty         = "inference: WithName(\"\")"
)

// Option configures an Engine in New. Option constructors panic on
// nonsensical values; that is a programmer error, not a runtime condition.
type Option func(*Engine)

// WithResolution sets the universe step Δ used by AddInput and AddOutput.
// Smaller steps make the centroid more precise and evaluation slower.
func WithResolution(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		panic(panicResolutionInvalid)
	}

	return func(e *Engine) { e.resolution = step }
}

// WithDefuzzifier selects the defuzzification method (default Centroid).
func WithDefuzzifier(m defuzz.Method) Option {
	if _, err := defuzz.ParseMethod(m.String()); err != nil {
		panic(panicMethodInvalid)
	}

	return func(e *Engine) { e.method = m }
}

// WithInputClipping clamps crisp inputs of variables created by AddInput to
// their universe bounds before fuzzification.
func WithInputClipping() Option {
	return func(e *Engine) { e.clip = true }
}

// WithLogger attaches a zap logger. Rule firings and defuzzified outputs are
// logged at debug level, empty aggregate regions at warn level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(e *Engine) { e.log = l }
}

// WithMetrics registers the engine's Prometheus collectors with reg, labelled
// with the engine name. Registering two engines with the same name on one
// registry panics.
func WithMetrics(reg prometheus.Registerer) Option {
	if reg == nil {
		panic(panicRegistererNil)
	}

	return func(e *Engine) { e.reg = reg }
}

// WithName names the engine for logs and metrics.
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(e *Engine) { e.name = name }
}
