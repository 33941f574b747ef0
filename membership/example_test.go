// SPDX-License-Identifier: MIT

package membership_test

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/universe"
)

// ExampleSample samples the "slow" service-speed set over [0,10].
func ExampleSample() {
	slow := membership.MustTrapezoid(0, 0, 3, 5)
	u := universe.MustNew(0, 10, 1)

	fmt.Println(slow)
	fmt.Println(membership.Sample(slow, u))
	// Output:
	// trapmf[0 0 3 5]
	// [1 1 1 1 0.5 0 0 0 0 0 0]
}
