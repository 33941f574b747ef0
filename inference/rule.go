// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvfuzzy/expr"
)

// Consequent is one "output is label" term of a rule, scaled by Weight.
//
// Weight multiplies the rule's firing strength before implication. The zero
// value means "unweighted" and is treated as 1; otherwise it must lie in (0,1].
type Consequent struct {
	Term   expr.Term
	Weight float64
}

// Then returns the unweighted consequent "variable is label".
func Then(variable, label string) Consequent {
	return Consequent{Term: expr.Is(variable, label), Weight: 1}
}

// Weighted returns c with Weight set to w.
func (c Consequent) Weighted(w float64) Consequent {
	c.Weight = w

	return c
}

func (c Consequent) weight() float64 {
	if c.Weight == 0 {
		return 1
	}

	return c.Weight
}

func (c Consequent) String() string {
	if w := c.weight(); w != 1 {
		return fmt.Sprintf("%v%%%g", c.Term, w)
	}

	return c.Term.String()
}

// Rule is "IF Antecedent THEN Consequents".
//
// Consequents are ordered; each targets a distinct output variable.
// Label is optional and only used in logs and String.
type Rule struct {
	Label       string
	Antecedent  expr.Expr
	Consequents []Consequent
}

// NewRule builds an unlabelled rule.
func NewRule(antecedent expr.Expr, consequents ...Consequent) Rule {
	return Rule{Antecedent: antecedent, Consequents: consequents}
}

// Named returns r with Label set.
func (r Rule) Named(label string) Rule {
	r.Label = label

	return r
}

// String renders "IF <antecedent> THEN <c1>, <c2>".
func (r Rule) String() string {
	parts := make([]string, len(r.Consequents))
	for i, c := range r.Consequents {
		parts[i] = c.String()
	}
	ante := "<nil>"
	if r.Antecedent != nil {
		ante = r.Antecedent.String()
	}
	s := "IF " + ante + " THEN " + strings.Join(parts, ", ")
	if r.Label != "" {
		s = r.Label + ": " + s
	}

	return s
}

// clone copies the consequent slice so callers cannot mutate an added rule.
func (r Rule) clone() Rule {
	cs := make([]Consequent, len(r.Consequents))
	for i, c := range r.Consequents {
		c.Weight = c.weight()
		cs[i] = c
	}
	r.Consequents = cs

	return r
}
