// SPDX-License-Identifier: MIT

// Package variable defines linguistic variables: a named Universe plus a set
// of labelled membership functions ("slow", "average", "fast").
//
// A Variable is either an Antecedent (an input the caller assigns a crisp
// value to) or a Consequent (an output the inference engine defuzzifies).
//
// Lifecycle:
//
//	v, _ := variable.New("speed", variable.Antecedent, universe.MustNew(0, 10, 1))
//	_ = v.AddLabel("slow", membership.MustTrapezoid(0, 0, 3, 5))
//	v.Freeze()                  // no more labels; done by the engine
//	d, err := v.Fuzzify("slow", 4) // 0.5
//
// Labels are unique within a variable. All read methods are safe for
// concurrent use; after Freeze the variable is immutable.
package variable
