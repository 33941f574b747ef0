// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/defuzz"
	"github.com/katalvlaran/lvfuzzy/internal/config"
	"github.com/katalvlaran/lvfuzzy/models/restaurant"
)

func reader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }

// TestReadScore re-prompts until a score in range is entered.
func TestReadScore(t *testing.T) {
	var out bytes.Buffer
	x, err := readScore(reader("abc\n11\n-1\n 7.5 \n"), &out, "Ambience: ")
	require.NoError(t, err)
	assert.Equal(t, 7.5, x)
	assert.Equal(t, 4, strings.Count(out.String(), "Ambience: "))
	assert.Equal(t, 1, strings.Count(out.String(), "Enter a valid number."))
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number between 0 and 10."))
}

// TestReadScore_EOF accepts a last line without newline and stops at EOF.
func TestReadScore_EOF(t *testing.T) {
	x, err := readScore(reader("3"), io.Discard, "> ")
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)

	_, err = readScore(reader(""), io.Discard, "> ")
	assert.ErrorIs(t, err, io.EOF)

	_, err = readScore(reader("12"), io.Discard, "> ")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// TestKnownInputs prefers flags over config values.
func TestKnownInputs(t *testing.T) {
	speed := &scoreFlag{}
	require.NoError(t, speed.Set("9"))
	scores := map[string]*scoreFlag{restaurant.Speed: speed}

	in, err := knownInputs(scores, map[string]float64{restaurant.Speed: 1, restaurant.Ambience: 4})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{restaurant.Speed: 9, restaurant.Ambience: 4}, in)

	_, err = knownInputs(nil, map[string]float64{restaurant.FoodQuality: 10.5})
	assert.ErrorIs(t, err, errOutOfRange)

	_, err = knownInputs(nil, map[string]float64{restaurant.Speed: 3, "price": 3})
	assert.ErrorIs(t, err, errUnknownInput)
}

// TestCollectInputs prompts only for missing inputs, in order.
func TestCollectInputs(t *testing.T) {
	var out bytes.Buffer
	in, err := collectInputs(map[string]float64{restaurant.FoodQuality: 8}, reader("6\n7\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		restaurant.Speed:       6,
		restaurant.FoodQuality: 8,
		restaurant.Ambience:    7,
	}, in)
	assert.Equal(t, "Enter input scores (0-10):\nService speed: Ambience: ", out.String())

	out.Reset()
	_, err = collectInputs(map[string]float64{
		restaurant.Speed: 1, restaurant.FoodQuality: 2, restaurant.Ambience: 3,
	}, reader(""), &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

// TestScoreFlag validates flag values.
func TestScoreFlag(t *testing.T) {
	f := &scoreFlag{}
	assert.Equal(t, "", f.String())
	assert.Error(t, f.Set("x"))
	assert.Error(t, f.Set("10.1"))
	assert.False(t, f.set)
	require.NoError(t, f.Set("2.5"))
	assert.Equal(t, "2.5", f.String())
}

// TestOverrides applies non-zero flag values.
func TestOverrides(t *testing.T) {
	cfg := config.Default()
	o := overrides{verbose: true, method: "lom", plotDir: "out", workers: 2}
	require.NoError(t, o.apply(&cfg))
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "lom", cfg.Method)
	assert.Equal(t, "out", cfg.PlotDir)
	assert.Equal(t, 2, cfg.Bench.Workers)
	assert.Equal(t, config.DefaultBenchIterations, cfg.Bench.Iterations)

	cfg = config.Default()
	assert.ErrorIs(t, overrides{method: "median"}.apply(&cfg), defuzz.ErrUnknownMethod)
}

// TestPrintResult matches the score report.
func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, 8.222)
	assert.Equal(t, "\nCustomer happiness: 8.22 (0-10)\nCategory: Happy\n", out.String())
}

// TestBuildModel wires config and metrics into the engine.
func TestBuildModel(t *testing.T) {
	cfg := config.Default()
	cfg.Resolution = 0.5
	cfg.MetricsAddr = "127.0.0.1:0"
	reg := prometheus.NewRegistry()

	eng, err := buildModel(cfg, reg)
	require.NoError(t, err)
	_, err = eng.Compute(map[string]float64{
		restaurant.Speed: 5, restaurant.FoodQuality: 5, restaurant.Ambience: 5,
	}, restaurant.Happiness)
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "lvfuzzy_engine_evaluations")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestBenchmark records one latency per evaluation.
func TestBenchmark(t *testing.T) {
	eng, err := restaurant.Build()
	require.NoError(t, err)
	done := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_bench_evaluations"})

	hg, err := benchmark(eng, 4, 25, done)
	require.NoError(t, err)
	assert.Equal(t, int64(100), hg.TotalCount())
	assert.Equal(t, 100.0, testutil.ToFloat64(done))

	var out bytes.Buffer
	printPercentiles(&out, hg)
	assert.Contains(t, out.String(), "Percentile")
}
