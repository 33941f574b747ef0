// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

// ErrNilExpr indicates a nil node inside a tree.
var ErrNilExpr = errors.New("expr: nil expression")

// Resolver returns the membership degree of the crisp value bound to
// variable in the fuzzy set label.
type Resolver interface {
	Degree(variable, label string) (float64, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(variable, label string) (float64, error)

// Degree implements Resolver.
func (f ResolverFunc) Degree(variable, label string) (float64, error) {
	return f(variable, label)
}

// Expr is a node of a fuzzy proposition tree.
type Expr interface {
	// Eval folds the tree to a degree in [0,1].
	Eval(r Resolver) (float64, error)

	// Terms appends every Term under this node, left to right.
	Terms(dst []Term) []Term

	fmt.Stringer
}

// Term is the leaf "variable is label".
type Term struct {
	Variable string
	Label    string
}

// Is returns the Term "variable is label".
func Is(variable, label string) Term {
	return Term{Variable: variable, Label: label}
}

// Eval implements Expr.
func (t Term) Eval(r Resolver) (float64, error) {
	return r.Degree(t.Variable, t.Label)
}

// Terms implements Expr.
func (t Term) Terms(dst []Term) []Term { return append(dst, t) }

func (t Term) String() string { return t.Variable + "[" + t.Label + "]" }

// And is the fuzzy conjunction min(Left, Right).
type And struct {
	Left, Right Expr
}

// Eval implements Expr.
func (a And) Eval(r Resolver) (float64, error) {
	l, rr, err := evalPair(a.Left, a.Right, r)
	if err != nil {
		return 0, err
	}

	return min(l, rr), nil
}

// Terms implements Expr.
func (a And) Terms(dst []Term) []Term { return termsPair(dst, a.Left, a.Right) }

func (a And) String() string { return "(" + str(a.Left) + " AND " + str(a.Right) + ")" }

// Or is the fuzzy disjunction max(Left, Right).
type Or struct {
	Left, Right Expr
}

// Eval implements Expr.
func (o Or) Eval(r Resolver) (float64, error) {
	l, rr, err := evalPair(o.Left, o.Right, r)
	if err != nil {
		return 0, err
	}

	return max(l, rr), nil
}

// Terms implements Expr.
func (o Or) Terms(dst []Term) []Term { return termsPair(dst, o.Left, o.Right) }

func (o Or) String() string { return "(" + str(o.Left) + " OR " + str(o.Right) + ")" }

// Not is the fuzzy complement 1 - X.
type Not struct {
	X Expr
}

// Negate returns Not{X: e}.
func Negate(e Expr) Not { return Not{X: e} }

// Eval implements Expr.
func (n Not) Eval(r Resolver) (float64, error) {
	if n.X == nil {
		return 0, ErrNilExpr
	}
	d, err := n.X.Eval(r)
	if err != nil {
		return 0, err
	}

	return 1 - d, nil
}

// Terms implements Expr.
func (n Not) Terms(dst []Term) []Term {
	if n.X == nil {
		return dst
	}

	return n.X.Terms(dst)
}

func (n Not) String() string { return "NOT " + str(n.X) }

// AllOf folds es into left-nested And nodes. It panics on an empty list.
func AllOf(es ...Expr) Expr {
	return fold("AllOf", es, func(l, r Expr) Expr { return And{Left: l, Right: r} })
}

// AnyOf folds es into left-nested Or nodes. It panics on an empty list.
func AnyOf(es ...Expr) Expr {
	return fold("AnyOf", es, func(l, r Expr) Expr { return Or{Left: l, Right: r} })
}

// Validate walks e and reports ErrNilExpr for any missing node.
func Validate(e Expr) error {
	switch n := e.(type) {
	case nil:
		return ErrNilExpr
	case Term:
		return nil
	case And:
		return validatePair(n.Left, n.Right)
	case Or:
		return validatePair(n.Left, n.Right)
	case Not:
		return Validate(n.X)
	default:
		// Foreign implementations are trusted to be complete.
		return nil
	}
}

func fold(name string, es []Expr, join func(l, r Expr) Expr) Expr {
	if len(es) == 0 {
		panic("expr: " + name + "() needs at least one expression")
	}
	acc := es[0]
	for _, e := range es[1:] {
		acc = join(acc, e)
	}

	return acc
}

func evalPair(left, right Expr, r Resolver) (float64, float64, error) {
	if left == nil || right == nil {
		return 0, 0, ErrNilExpr
	}
	l, err := left.Eval(r)
	if err != nil {
		return 0, 0, err
	}
	rr, err := right.Eval(r)
	if err != nil {
		return 0, 0, err
	}

	return l, rr, nil
}

func termsPair(dst []Term, left, right Expr) []Term {
	if left != nil {
		dst = left.Terms(dst)
	}
	if right != nil {
		dst = right.Terms(dst)
	}

	return dst
}

func validatePair(left, right Expr) error {
	if err := Validate(left); err != nil {
		return err
	}

	return Validate(right)
}

func str(e Expr) string {
	if e == nil {
		return "<nil>"
	}

	return e.String()
}
