// SPDX-License-Identifier: MIT

// Package membership provides the piecewise-linear fuzzy sets used by
// lvfuzzy: triangles and trapezoids.
//
// 🚀 Shapes
//
//	Trapezoid(a,b,c,d)          Triangle(a,b,c)
//
//	    b_____c                       b
//	    /     \                      / \
//	___/       \___              ___/   \___
//	   a       d                    a   c
//
//	  • 0 outside [a,d] (triangle: [a,c])
//	  • linear rise on [a,b], hold at 1 on [b,c], linear fall on [c,d]
//	  • a == b or c == d gives a vertical (step) edge, never a division by zero
//
// Every shape is a total function of the reals: inputs outside the owning
// variable's universe are legal and simply yield 0 when they fall outside the
// support. NaN yields 0.
//
// ⚙️ Usage:
//
//	slow := membership.MustTrapezoid(0, 0, 3, 5)
//	avg, err := membership.NewTriangle(3, 5, 7)
//	slow.Degree(4) // 0.5
//
// Sample evaluates any Func across a universe for plotting and aggregation.
package membership
