// SPDX-License-Identifier: MIT

package plotting_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/internal/plotting"
	"github.com/katalvlaran/lvfuzzy/models/restaurant"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func assertPNG(t *testing.T, file string) {
	t.Helper()
	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, pngMagic), "%s is not a PNG", file)
}

// TestModel writes one image per variable with the evaluated region.
func TestModel(t *testing.T) {
	eng, err := restaurant.Build()
	require.NoError(t, err)
	in := map[string]float64{restaurant.Speed: 6, restaurant.FoodQuality: 8, restaurant.Ambience: 7}
	res, err := eng.Evaluate(in)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "plots")
	files, err := plotting.Model(eng, in, res, dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "speed.png"),
		filepath.Join(dir, "food_quality.png"),
		filepath.Join(dir, "ambience.png"),
		filepath.Join(dir, "happiness.png"),
	}
	assert.Equal(t, want, files)
	for _, f := range files {
		assertPNG(t, f)
	}
}

// TestModel_NoResult draws memberships only.
func TestModel_NoResult(t *testing.T) {
	eng, err := restaurant.Build()
	require.NoError(t, err)

	files, err := plotting.Model(eng, nil, nil, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

// TestVariable frames the plot on the variable universe.
func TestVariable(t *testing.T) {
	eng, err := restaurant.Build()
	require.NoError(t, err)
	v, ok := eng.Variable(restaurant.Speed)
	require.True(t, ok)

	x := 4.5
	p, err := plotting.Variable(v, &x)
	require.NoError(t, err)
	assert.Equal(t, "speed (antecedent)", p.Title.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 10.0, p.X.Max)
	assert.Equal(t, 1.05, p.Y.Max)

	_, err = plotting.Variable(nil, nil)
	assert.ErrorIs(t, err, plotting.ErrNilVariable)
}

// TestAggregate_EmptyRegion still renders without a crisp marker.
func TestAggregate_EmptyRegion(t *testing.T) {
	eng := inference.New()
	require.NoError(t, eng.AddInput("x", 0, 10))
	require.NoError(t, eng.AddOutput("y", 0, 10))
	eng.Freeze()
	v, _ := eng.Variable("y")

	res, err := eng.Evaluate(map[string]float64{"x": 1})
	require.NoError(t, err)
	_, err = res.Output("y")
	require.ErrorIs(t, err, inference.ErrEmptyAggregateRegion)

	p, err := plotting.Aggregate(v, res.Regions["y"], 0, false)
	require.NoError(t, err)
	assert.Equal(t, "y (consequent)", p.Title.Text)

	file := filepath.Join(t.TempDir(), "y.png")
	require.NoError(t, plotting.SavePNG(p, file))
	assertPNG(t, file)
}
