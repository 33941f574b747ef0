// SPDX-License-Identifier: MIT

// Package plotting renders membership functions and aggregated output
// regions of an inference engine as PNG images.
package plotting

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// Image geometry.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
	DPI    = 96
)

// ErrNilVariable indicates a nil variable was passed for rendering.
var ErrNilVariable = errors.New("plotting: variable is nil")

var regionFill = color.NRGBA{R: 70, G: 130, B: 180, A: 110}

// Variable plots every label of v over its universe. When crisp is non-nil a
// vertical marker is drawn at *crisp.
func Variable(v *variable.Variable, crisp *float64) (*plot.Plot, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	p := newPlot(v)
	xs := v.Universe().Points()

	for i, label := range v.Labels() {
		mu, err := v.Sample(label)
		if err != nil {
			return nil, err
		}
		line, err := plotter.NewLine(xy(xs, mu))
		if err != nil {
			return nil, fmt.Errorf("plotting: %s[%s]: %w", v.Name(), label, err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(label, line)
	}
	if crisp != nil {
		if err := addMarker(p, *crisp); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Aggregate plots the labels of output variable v with the aggregated region
// filled and, when ok, the crisp value marked.
func Aggregate(v *variable.Variable, r inference.Region, crisp float64, ok bool) (*plot.Plot, error) {
	var mark *float64
	if ok {
		mark = &crisp
	}
	p, err := Variable(v, mark)
	if err != nil {
		return nil, err
	}

	area, err := plotter.NewLine(xy(r.Points, r.Degrees))
	if err != nil {
		return nil, fmt.Errorf("plotting: %s region: %w", v.Name(), err)
	}
	area.LineStyle.Width = vg.Points(1)
	area.FillColor = regionFill
	p.Add(area)
	p.Legend.Add("aggregated", area)

	return p, nil
}

// SavePNG renders p into filename, creating parent directories.
func SavePNG(p *plot.Plot, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("plotting: cannot create directory: %w", err)
	}
	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI))
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("plotting: cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("plotting: cannot write png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("plotting: cannot write png: %w", err)
	}

	return f.Close()
}

// Model writes one PNG per engine variable into dir and returns the file
// paths in input-then-output order. Inputs present in inputs are marked.
// When res is non-nil every output also shows its aggregated region.
func Model(eng *inference.Engine, inputs map[string]float64, res *inference.Result, dir string) ([]string, error) {
	var files []string

	for _, name := range eng.Inputs() {
		v, _ := eng.Variable(name)
		var mark *float64
		if x, ok := inputs[name]; ok {
			mark = &x
		}
		p, err := Variable(v, mark)
		if err != nil {
			return files, err
		}
		file := filepath.Join(dir, name+".png")
		if err := SavePNG(p, file); err != nil {
			return files, err
		}
		files = append(files, file)
	}

	for _, name := range eng.Outputs() {
		v, _ := eng.Variable(name)
		var (
			p   *plot.Plot
			err error
		)
		if r, ok := regionOf(res, name); ok {
			crisp, has := res.Outputs[name]
			p, err = Aggregate(v, r, crisp, has)
		} else {
			p, err = Variable(v, nil)
		}
		if err != nil {
			return files, err
		}
		file := filepath.Join(dir, name+".png")
		if err := SavePNG(p, file); err != nil {
			return files, err
		}
		files = append(files, file)
	}

	return files, nil
}

func regionOf(res *inference.Result, name string) (inference.Region, bool) {
	if res == nil {
		return inference.Region{}, false
	}
	r, ok := res.Regions[name]

	return r, ok
}

func newPlot(v *variable.Variable) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", v.Name(), v.Kind())
	p.X.Label.Text = v.Name()
	p.Y.Label.Text = "membership"
	p.X.Min, p.X.Max = v.Universe().Lo(), v.Universe().Hi()
	p.Y.Min, p.Y.Max = 0, 1.05
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	return p
}

func addMarker(p *plot.Plot, x float64) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: 1}})
	if err != nil {
		return fmt.Errorf("plotting: marker: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("%.2f", x), line)

	return nil
}

func xy(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	return pts
}
