// SPDX-License-Identifier: MIT

// Package config loads the lvfuzzy command configuration from TOML.
//
// Every key is optional; absent keys keep the values of Default. Unknown keys
// are rejected. Names under [inputs] are free-form here and are checked by
// the command against the model's inputs.
//
//	resolution      = 0.1
//	method          = "centroid"
//	clip_inputs     = true
//	plot_dir        = "plots"
//	metrics_address = "127.0.0.1:8080"
//	verbose         = false
//
//	[inputs]
//	speed        = 6.5
//	food_quality = 9.8
//	ambience     = 4.2
//
//	[bench]
//	workers    = 8
//	iterations = 10000
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/lvfuzzy/defuzz"
	"github.com/katalvlaran/lvfuzzy/inference"
)

var (
	// ErrBadResolution indicates a non-positive or non-finite resolution.
	ErrBadResolution = errors.New("config: resolution must be finite and > 0")

	// ErrBadInput indicates a non-finite crisp input value.
	ErrBadInput = errors.New("config: input value must be finite")

	// ErrBadBench indicates non-positive bench workers or iterations.
	ErrBadBench = errors.New("config: bench workers and iterations must be > 0")
)

// Defaults applied before decoding.
const (
	DefaultPlotDir         = "."
	DefaultBenchWorkers    = 4
	DefaultBenchIterations = 10_000
)

// Config is the decoded configuration file.
type Config struct {
	Resolution  float64            `toml:"resolution,omitempty"`
	Method      string             `toml:"method,omitempty"`
	ClipInputs  bool               `toml:"clip_inputs,omitempty"`
	Inputs      map[string]float64 `toml:"inputs,omitempty"`
	PlotDir     string             `toml:"plot_dir,omitempty"`
	MetricsAddr string             `toml:"metrics_address,omitempty"`
	Verbose     bool               `toml:"verbose,omitempty"`
	Bench       BenchConfig        `toml:"bench,omitempty"`
}

// BenchConfig sizes the bench command.
type BenchConfig struct {
	Workers    int `toml:"workers,omitempty"`
	Iterations int `toml:"iterations,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Resolution: inference.DefaultResolution,
		Method:     inference.DefaultMethod.String(),
		PlotDir:    DefaultPlotDir,
		Bench: BenchConfig{
			Workers:    DefaultBenchWorkers,
			Iterations: DefaultBenchIterations,
		},
	}
}

// Decode reads TOML from r over Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and decodes the file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Decode(bytes.NewReader(raw))
}

// Validate checks value ranges. Method names are checked by defuzz.ParseMethod.
func (c Config) Validate() error {
	if !(c.Resolution > 0) || math.IsInf(c.Resolution, 0) {
		return fmt.Errorf("%w: %v", ErrBadResolution, c.Resolution)
	}
	if _, err := defuzz.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("config: method: %w", err)
	}
	for name, x := range c.Inputs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s = %v", ErrBadInput, name, x)
		}
	}
	if c.Bench.Workers <= 0 || c.Bench.Iterations <= 0 {
		return fmt.Errorf("%w: workers=%d iterations=%d", ErrBadBench, c.Bench.Workers, c.Bench.Iterations)
	}

	return nil
}

// EngineOptions translates the model settings into engine options.
// The configuration must have passed Validate.
func (c Config) EngineOptions() ([]inference.Option, error) {
	m, err := defuzz.ParseMethod(c.Method)
	if err != nil {
		return nil, fmt.Errorf("config: method: %w", err)
	}
	opts := []inference.Option{
		inference.WithResolution(c.Resolution),
		inference.WithDefuzzifier(m),
	}
	if c.ClipInputs {
		opts = append(opts, inference.WithInputClipping())
	}

	return opts, nil
}
