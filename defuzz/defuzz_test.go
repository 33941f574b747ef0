// SPDX-License-Identifier: MIT

package defuzz_test

import (
	"testing"

	"github.com/katalvlaran/lvfuzzy/defuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xs = []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// TestCentroid_Symmetric checks a symmetric triangle centres on its peak.
func TestCentroid_Symmetric(t *testing.T) {
	mu := []float64{0, 0, 0, 0, 0.5, 1, 0.5, 0, 0, 0, 0}
	c, err := defuzz.CentroidOf(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, c, 1e-12)
}

// TestCentroid_Weighted checks the rectangle-rule formula on a skewed region.
func TestCentroid_Weighted(t *testing.T) {
	mu := []float64{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0.5}
	// (0·1 + 1·1 + 10·0.5) / 2.5 = 6 / 2.5
	c, err := defuzz.CentroidOf(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, c, 1e-12)
}

// TestEmptyRegion ensures a flat-zero region never yields a number.
func TestEmptyRegion(t *testing.T) {
	zero := make([]float64, len(xs))
	for _, m := range []defuzz.Method{
		defuzz.Centroid, defuzz.Bisector, defuzz.MeanOfMaximum,
		defuzz.SmallestOfMaximum, defuzz.LargestOfMaximum,
	} {
		_, err := defuzz.Defuzzify(m, xs, zero)
		assert.ErrorIs(t, err, defuzz.ErrEmptyRegion, "method %v", m)
	}

	_, err := defuzz.CentroidOf(nil, nil)
	assert.ErrorIs(t, err, defuzz.ErrEmptyRegion)
}

// TestLengthMismatch rejects misaligned inputs before summing.
func TestLengthMismatch(t *testing.T) {
	_, err := defuzz.CentroidOf(xs, []float64{1})
	assert.ErrorIs(t, err, defuzz.ErrLengthMismatch)
}

// TestMaximumMethods covers mom/som/lom on a plateau.
func TestMaximumMethods(t *testing.T) {
	mu := []float64{0, 0.2, 0.7, 0.7, 0.7, 0.3, 0, 0, 0, 0, 0}

	mom, err := defuzz.Defuzzify(defuzz.MeanOfMaximum, xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, mom, 1e-12)

	som, err := defuzz.Defuzzify(defuzz.SmallestOfMaximum, xs, mu)
	require.NoError(t, err)
	assert.Equal(t, 2.0, som)

	lom, err := defuzz.Defuzzify(defuzz.LargestOfMaximum, xs, mu)
	require.NoError(t, err)
	assert.Equal(t, 4.0, lom)
}

// TestBisector splits the mass in half.
func TestBisector(t *testing.T) {
	mu := []float64{0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0}
	b, err := defuzz.Defuzzify(defuzz.Bisector, xs, mu)
	require.NoError(t, err)
	assert.Equal(t, 3.0, b, "cumulative mass reaches 2 of 4 at x=3")
}

// TestParseMethod round-trips names and rejects unknown ones.
func TestParseMethod(t *testing.T) {
	for _, m := range []defuzz.Method{
		defuzz.Centroid, defuzz.Bisector, defuzz.MeanOfMaximum,
		defuzz.SmallestOfMaximum, defuzz.LargestOfMaximum,
	} {
		got, err := defuzz.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := defuzz.ParseMethod(" Centroid ")
	require.NoError(t, err)
	assert.Equal(t, defuzz.Centroid, got)

	_, err = defuzz.ParseMethod("weighted")
	assert.ErrorIs(t, err, defuzz.ErrUnknownMethod)

	_, err = defuzz.Defuzzify(defuzz.Method(42), xs, xs)
	assert.ErrorIs(t, err, defuzz.ErrUnknownMethod)
	assert.Equal(t, "Method(42)", defuzz.Method(42).String())
}
