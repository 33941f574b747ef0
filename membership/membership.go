// SPDX-License-Identifier: MIT

package membership

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvfuzzy/universe"
)

// ErrBadShape indicates unordered or non-finite shape parameters.
var ErrBadShape = errors.New("membership: parameters must be finite and non-decreasing")

// Func maps a real value to a degree of membership in [0,1].
// Implementations must be total, pure and safe for concurrent use.
type Func interface {
	Degree(x float64) float64
}

// Kind tags the concrete shape behind a Shape.
type Kind int

const (
	// KindTriangle is Triangle(a,b,c).
	KindTriangle Kind = iota

	// KindTrapezoid is Trapezoid(a,b,c,d).
	KindTrapezoid
)

// String returns "trimf" or "trapmf".
func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "trimf"
	case KindTrapezoid:
		return "trapmf"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a Func whose parameters can be inspected.
type Shape interface {
	Func
	Kind() Kind
	Params() []float64
}

// Triangle rises on [A,B], peaks at B and falls on [B,C].
type Triangle struct {
	A, B, C float64
}

// NewTriangle validates a <= b <= c (all finite).
func NewTriangle(a, b, c float64) (Triangle, error) {
	if err := checkOrdered(a, b, c); err != nil {
		return Triangle{}, err
	}

	return Triangle{A: a, B: b, C: c}, nil
}

// MustTriangle is NewTriangle for static model definitions; it panics on
// invalid parameters.
func MustTriangle(a, b, c float64) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}

	return t
}

// Degree implements Func.
func (t Triangle) Degree(x float64) float64 {
	switch {
	case math.IsNaN(x), x < t.A, x > t.C:
		return 0
	case x == t.B:
		return 1
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.C - x) / (t.C - t.B)
	}
}

// Kind implements Shape.
func (t Triangle) Kind() Kind { return KindTriangle }

// Params implements Shape.
func (t Triangle) Params() []float64 { return []float64{t.A, t.B, t.C} }

// Shift returns the triangle translated by k.
func (t Triangle) Shift(k float64) Triangle {
	return Triangle{A: t.A + k, B: t.B + k, C: t.C + k}
}

func (t Triangle) String() string {
	return fmt.Sprintf("trimf[%g %g %g]", t.A, t.B, t.C)
}

// Trapezoid rises on [A,B], holds at 1 on [B,C] and falls on [C,D].
type Trapezoid struct {
	A, B, C, D float64
}

// NewTrapezoid validates a <= b <= c <= d (all finite).
func NewTrapezoid(a, b, c, d float64) (Trapezoid, error) {
	if err := checkOrdered(a, b, c, d); err != nil {
		return Trapezoid{}, err
	}

	return Trapezoid{A: a, B: b, C: c, D: d}, nil
}

// MustTrapezoid is NewTrapezoid for static model definitions; it panics on
// invalid parameters.
func MustTrapezoid(a, b, c, d float64) Trapezoid {
	t, err := NewTrapezoid(a, b, c, d)
	if err != nil {
		panic(err)
	}

	return t
}

// Degree implements Func.
func (t Trapezoid) Degree(x float64) float64 {
	switch {
	case math.IsNaN(x), x < t.A, x > t.D:
		return 0
	case x >= t.B && x <= t.C:
		return 1
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.D - x) / (t.D - t.C)
	}
}

// Kind implements Shape.
func (t Trapezoid) Kind() Kind { return KindTrapezoid }

// Params implements Shape.
func (t Trapezoid) Params() []float64 { return []float64{t.A, t.B, t.C, t.D} }

// Shift returns the trapezoid translated by k.
func (t Trapezoid) Shift(k float64) Trapezoid {
	return Trapezoid{A: t.A + k, B: t.B + k, C: t.C + k, D: t.D + k}
}

func (t Trapezoid) String() string {
	return fmt.Sprintf("trapmf[%g %g %g %g]", t.A, t.B, t.C, t.D)
}

// Sample evaluates fn at every point of u.
// Complexity: O(u.Len()).
func Sample(fn Func, u universe.Universe) []float64 {
	xs := u.Points()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn.Degree(x)
	}

	return ys
}

func checkOrdered(ps ...float64) error {
	for i, p := range ps {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%v: %w", ps, ErrBadShape)
		}
		if i > 0 && ps[i-1] > p {
			return fmt.Errorf("%v: %w", ps, ErrBadShape)
		}
	}

	return nil
}
