// SPDX-License-Identifier: MIT

package defuzz

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyRegion indicates Σ mu == 0: nothing fired, the output is undefined.
	ErrEmptyRegion = errors.New("defuzz: aggregated region is empty")

	// ErrLengthMismatch indicates len(xs) != len(mu).
	ErrLengthMismatch = errors.New("defuzz: points and degrees differ in length")

	// ErrUnknownMethod indicates an unsupported Method value or name.
	ErrUnknownMethod = errors.New("defuzz: unknown method")
)

// Method selects the defuzzification rule.
type Method int

const (
	// Centroid is the center of gravity. Default.
	Centroid Method = iota

	// Bisector splits the region mass in two halves.
	Bisector

	// MeanOfMaximum averages the points of maximal degree.
	MeanOfMaximum

	// SmallestOfMaximum takes the leftmost point of maximal degree.
	SmallestOfMaximum

	// LargestOfMaximum takes the rightmost point of maximal degree.
	LargestOfMaximum
)

var methodNames = [...]string{
	Centroid:          "centroid",
	Bisector:          "bisector",
	MeanOfMaximum:     "mom",
	SmallestOfMaximum: "som",
	LargestOfMaximum:  "lom",
}

// String returns the short name used in configuration ("centroid", "mom", …).
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a configuration name to a Method (case-insensitive).
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if s == name {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Defuzzify applies m to the region (xs, mu).
//
// Errors:
//   - ErrLengthMismatch: len(xs) != len(mu).
//   - ErrEmptyRegion:    Σ mu == 0.
//   - ErrUnknownMethod:  m is not a defined Method.
//
// Complexity: O(n).
func Defuzzify(m Method, xs, mu []float64) (float64, error) {
	if len(xs) != len(mu) {
		return 0, fmt.Errorf("%d points, %d degrees: %w", len(xs), len(mu), ErrLengthMismatch)
	}
	total := mass(mu)
	if total <= 0 {
		return 0, ErrEmptyRegion
	}

	switch m {
	case Centroid:
		return floats.Dot(xs, mu) / total, nil
	case Bisector:
		return bisector(xs, mu, total), nil
	case MeanOfMaximum:
		pts := maxima(xs, mu)
		return floats.Sum(pts) / float64(len(pts)), nil
	case SmallestOfMaximum:
		return floats.Min(maxima(xs, mu)), nil
	case LargestOfMaximum:
		return floats.Max(maxima(xs, mu)), nil
	default:
		return 0, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}
}

// CentroidOf is Defuzzify(Centroid, xs, mu).
func CentroidOf(xs, mu []float64) (float64, error) {
	return Defuzzify(Centroid, xs, mu)
}

func mass(mu []float64) float64 {
	if len(mu) == 0 {
		return 0
	}

	return floats.Sum(mu)
}

func bisector(xs, mu []float64, total float64) float64 {
	half := total / 2
	acc := 0.0
	for i, d := range mu {
		acc += d
		if acc >= half {
			return xs[i]
		}
	}

	return xs[len(xs)-1]
}

// maxima returns the points whose degree equals the region maximum.
func maxima(xs, mu []float64) []float64 {
	peak := floats.Max(mu)
	out := make([]float64, 0, 4)
	for i, d := range mu {
		if d == peak {
			out = append(out, xs[i])
		}
	}

	return out
}
