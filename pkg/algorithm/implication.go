package algorithm

import (
	"fmt"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// maxImplicationPasses bounds the forward re-evaluation loop; a
// circuit with N gates settles in at most N passes, so this is a
// generous safety net against a construction bug turning a fixpoint
// loop into an infinite one.
const maxImplicationPasses = 1000

// Imply re-evaluates the circuit forward from its current primary
// input assignment until no line changes, reapplying the fault
// overlay at the fault site on every pass. It reports an error if the
// assignment is self-contradictory (a gate recomputes a value that
// conflicts with one already latched downstream).
func Imply(c *circuit.Circuit) error {
	for i := 0; i < maxImplicationPasses; i++ {
		changed, conflict := c.Simulate()
		if conflict {
			return fmt.Errorf("implication conflict while evaluating circuit %q", c.Name)
		}
		if !changed {
			return nil
		}
	}
	return fmt.Errorf("implication did not settle within %d passes", maxImplicationPasses)
}
