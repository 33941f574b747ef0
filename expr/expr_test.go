// SPDX-License-Identifier: MIT

package expr_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvfuzzy/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnbound = errors.New("unbound")

// table resolves degrees from a fixed map keyed by "var[label]".
func table(m map[string]float64) expr.Resolver {
	return expr.ResolverFunc(func(v, l string) (float64, error) {
		d, ok := m[v+"["+l+"]"]
		if !ok {
			return 0, errUnbound
		}

		return d, nil
	})
}

// TestOperators checks the Zadeh min/max/complement semantics.
func TestOperators(t *testing.T) {
	r := table(map[string]float64{"a[x]": 0.3, "b[y]": 0.8})
	a, b := expr.Is("a", "x"), expr.Is("b", "y")

	got, err := expr.And{Left: a, Right: b}.Eval(r)
	require.NoError(t, err)
	assert.Equal(t, 0.3, got)

	got, err = expr.Or{Left: a, Right: b}.Eval(r)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got)

	got, err = expr.Negate(b).Eval(r)
	require.NoError(t, err)
	assert.Equal(t, 1-0.8, got)
}

// TestIdempotenceAndComplement checks Not(e) = 1-e, And(e,e) = e, Or(e,e) = e
// over a sweep of degrees.
func TestIdempotenceAndComplement(t *testing.T) {
	for _, d := range []float64{0, 0.1, 0.25, 1.0 / 3, 0.5, 0.9, 1} {
		r := table(map[string]float64{"v[l]": d})
		e := expr.AnyOf(expr.Is("v", "l"), expr.Negate(expr.Negate(expr.Is("v", "l"))))

		base, err := e.Eval(r)
		require.NoError(t, err)

		not, err := expr.Negate(e).Eval(r)
		require.NoError(t, err)
		assert.Equal(t, 1-base, not, "Not(e) == 1 - e exactly")

		and, err := expr.And{Left: e, Right: e}.Eval(r)
		require.NoError(t, err)
		assert.Equal(t, base, and)

		or, err := expr.Or{Left: e, Right: e}.Eval(r)
		require.NoError(t, err)
		assert.Equal(t, base, or)
	}
}

// TestAllOfAnyOf checks the n-ary folds on a three-term rule.
func TestAllOfAnyOf(t *testing.T) {
	r := table(map[string]float64{"s[m]": 0.4, "f[m]": 0.9, "a[m]": 0.6})
	terms := []expr.Expr{expr.Is("s", "m"), expr.Is("f", "m"), expr.Is("a", "m")}

	all, err := expr.AllOf(terms...).Eval(r)
	require.NoError(t, err)
	assert.Equal(t, 0.4, all)

	anyv, err := expr.AnyOf(terms...).Eval(r)
	require.NoError(t, err)
	assert.Equal(t, 0.9, anyv)

	single := expr.AllOf(terms[0])
	assert.Equal(t, terms[0], single, "single operand folds to itself")

	assert.Panics(t, func() { expr.AnyOf() })
}

// TestTermsAndString lists leaves left to right and renders the tree.
func TestTermsAndString(t *testing.T) {
	e := expr.AllOf(expr.Is("a", "x"), expr.Negate(expr.AnyOf(expr.Is("b", "y"), expr.Is("c", "z"))))
	assert.Equal(t,
		[]expr.Term{{Variable: "a", Label: "x"}, {Variable: "b", Label: "y"}, {Variable: "c", Label: "z"}},
		e.Terms(nil))
	assert.Equal(t, "(a[x] AND NOT (b[y] OR c[z]))", e.String())
}

// TestErrors propagates resolver errors and rejects nil nodes.
func TestErrors(t *testing.T) {
	r := table(map[string]float64{"a[x]": 1})

	_, err := expr.And{Left: expr.Is("a", "x"), Right: expr.Is("q", "x")}.Eval(r)
	assert.ErrorIs(t, err, errUnbound)

	_, err = expr.Or{Left: expr.Is("a", "x")}.Eval(r)
	assert.ErrorIs(t, err, expr.ErrNilExpr)

	_, err = expr.Not{}.Eval(r)
	assert.ErrorIs(t, err, expr.ErrNilExpr)

	assert.ErrorIs(t, expr.Validate(nil), expr.ErrNilExpr)
	assert.ErrorIs(t, expr.Validate(expr.And{Left: expr.Is("a", "x")}), expr.ErrNilExpr)
	assert.ErrorIs(t, expr.Validate(expr.Negate(expr.Or{Right: expr.Is("a", "x")})), expr.ErrNilExpr)
	assert.NoError(t, expr.Validate(expr.Negate(expr.Is("a", "x"))))
}
