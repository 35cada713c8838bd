package algorithm

import (
	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// DFrontier tracks the set of gates whose output is still unassigned
// (X) but that carry at least one faulty input — the set PODEM must
// either propagate through or give up on.
type DFrontier struct {
	Circuit *circuit.Circuit
	Gates   []*circuit.Gate
}

// NewDFrontier creates an empty D-frontier tracker bound to c.
func NewDFrontier(c *circuit.Circuit) *DFrontier {
	return &DFrontier{Circuit: c}
}

// Update recomputes the D-frontier from the circuit's current state.
// Must be called after every implication.
func (f *DFrontier) Update() {
	f.Gates = f.Gates[:0]
	for _, gate := range f.Circuit.Order() {
		if gate.IsOutputPin {
			continue
		}
		if gate.Output.Value == circuit.X && gate.HasFaultyInput() {
			f.Gates = append(f.Gates, gate)
		}
	}
}

// Empty reports whether the D-frontier currently has no gates.
func (f *DFrontier) Empty() bool {
	return len(f.Gates) == 0
}
