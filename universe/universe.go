// SPDX-License-Identifier: MIT

package universe

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrBadBounds indicates lo >= hi or a non-finite bound.
	ErrBadBounds = errors.New("universe: bounds must be finite with lo < hi")

	// ErrBadStep indicates a non-positive or non-finite resolution.
	ErrBadStep = errors.New("universe: step must be finite and > 0")

	// ErrTooManyPoints indicates a range and step yielding more than MaxPoints samples.
	ErrTooManyPoints = errors.New("universe: too many sample points")
)

// MaxPoints caps the number of samples of one universe.
const MaxPoints = 1 << 24

// gridEps absorbs binary rounding in (hi-lo)/Δ so that, e.g., [0,1] at
// Δ=0.1 keeps its right endpoint.
const gridEps = 1e-9

// Universe is an immutable discretization of [lo, hi] with step Δ.
// The zero value is not valid; use New.
type Universe struct {
	lo, hi, step float64
	n            int
}

// New validates bounds and resolution and returns the Universe.
//
// Errors:
//   - ErrBadBounds: lo >= hi, or either bound is NaN/±Inf.
//   - ErrBadBounds: hi-lo overflows float64.
//   - ErrBadStep:   step <= 0, or step is NaN/±Inf.
//   - ErrTooManyPoints: more than MaxPoints samples.
//
// Complexity: O(1).
func New(lo, hi, step float64) (Universe, error) {
	if !finite(lo) || !finite(hi) || lo >= hi {
		return Universe{}, fmt.Errorf("[%g, %g]: %w", lo, hi, ErrBadBounds)
	}
	if !finite(step) || step <= 0 {
		return Universe{}, fmt.Errorf("step %g: %w", step, ErrBadStep)
	}
	span := hi - lo
	if math.IsInf(span, 0) {
		return Universe{}, fmt.Errorf("[%g, %g] width overflows: %w", lo, hi, ErrBadBounds)
	}
	r := math.Floor(span/step + gridEps)
	if r+1 > MaxPoints {
		return Universe{}, fmt.Errorf("[%g, %g] step %g: %w (max %d)", lo, hi, step, ErrTooManyPoints, MaxPoints)
	}
	n := int(r) + 1

	return Universe{lo: lo, hi: hi, step: step, n: n}, nil
}

// MustNew is New for static model definitions; it panics on invalid input.
func MustNew(lo, hi, step float64) Universe {
	u, err := New(lo, hi, step)
	if err != nil {
		panic(err)
	}

	return u
}

// Lo returns the lower bound.
func (u Universe) Lo() float64 { return u.lo }

// Hi returns the upper bound.
func (u Universe) Hi() float64 { return u.hi }

// Step returns the resolution Δ.
func (u Universe) Step() float64 { return u.step }

// Len returns the number of sample points.
func (u Universe) Len() int { return u.n }

// IsZero reports whether u is the (invalid) zero value.
func (u Universe) IsZero() bool { return u.n == 0 }

// At returns sample i (lo + i·Δ). It does not bound-check i.
func (u Universe) At(i int) float64 { return u.lo + float64(i)*u.step }

// Points returns a fresh slice with every sample point in ascending order.
//
// When the grid lands exactly on hi the points are spread with floats.Span,
// which pins both endpoints and avoids accumulating lo+i·Δ rounding.
func (u Universe) Points() []float64 {
	if u.n == 0 {
		return nil
	}
	xs := make([]float64, u.n)
	if u.n > 1 && math.Abs(u.At(u.n-1)-u.hi) <= gridEps*math.Max(1, math.Abs(u.hi)) {
		return floats.Span(xs, u.lo, u.hi)
	}
	for i := range xs {
		xs[i] = u.At(i)
	}

	return xs
}

// Contains reports whether lo <= x <= hi.
func (u Universe) Contains(x float64) bool { return x >= u.lo && x <= u.hi }

// Clamp limits x to [lo, hi]. NaN is returned unchanged.
func (u Universe) Clamp(x float64) float64 {
	switch {
	case x < u.lo:
		return u.lo
	case x > u.hi:
		return u.hi
	default:
		return x
	}
}

// String renders the universe as "[lo, hi] step Δ (n points)".
func (u Universe) String() string {
	return fmt.Sprintf("[%g, %g] step %g (%d points)", u.lo, u.hi, u.step, u.n)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
