package algorithm

import (
	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// InitialObjective is a (line, value) pair the search wants to reach:
// either the activation objective at the fault site, or a
// non-controlling-value objective on an unassigned D-frontier input.
type InitialObjective struct {
	Line  *circuit.Line
	Value circuit.LogicValue
}

// SelectObjective picks the next internal objective in the PODEM
// loop: activate the fault if it is not yet excited, otherwise
// pick a D-frontier gate to propagate through. ok is false when no
// objective remains to pursue (the fault site is assigned and no
// D-frontier gate with an X-path offers an unassigned input), so the
// search must backtrack. It does not check whether the fault effect has
// already reached a primary output; the caller does that first.
func SelectObjective(c *circuit.Circuit, df *DFrontier) (obj InitialObjective, ok bool) {
	if c.FaultSite != nil && !c.FaultSite.IsAssigned() {
		target := circuit.One
		if c.FaultType == circuit.One {
			target = circuit.Zero
		}
		return InitialObjective{Line: c.FaultSite, Value: target}, true
	}

	if df.Empty() {
		return InitialObjective{}, false
	}

	observable := observableGates(c, df.Gates)
	if len(observable) == 0 {
		return InitialObjective{}, false
	}

	gate := chooseDFrontierGate(observable)
	ncValue := gate.Type.NonControllingValue()

	for _, input := range gate.Inputs {
		if input.IsFaulty() || input.IsAssigned() {
			continue
		}
		return InitialObjective{Line: input, Value: ncValue}, true
	}

	// Every input is already assigned or faulty but the gate is still
	// in the D-frontier: nothing left to choose here for this gate.
	return InitialObjective{}, false
}

// observableGates filters gates down to those whose output still has
// an X-path to some primary output: a D-frontier gate with no such
// path can never propagate the fault effect any further, so objective
// selection must not waste decisions pursuing it even when it is
// otherwise the cheapest (lowest-CO) gate in the frontier.
func observableGates(c *circuit.Circuit, gates []*circuit.Gate) []*circuit.Gate {
	observable := make([]*circuit.Gate, 0, len(gates))
	for _, g := range gates {
		if hasXPath(c, g.Output) {
			observable = append(observable, g)
		}
	}
	return observable
}

// chooseDFrontierGate picks the D-frontier gate whose output is
// cheapest to observe (lowest CO), breaking ties by gate ID for
// determinism.
func chooseDFrontierGate(gates []*circuit.Gate) *circuit.Gate {
	best := gates[0]
	for _, g := range gates[1:] {
		if g.Output.CO < best.Output.CO ||
			(g.Output.CO == best.Output.CO && g.ID < best.ID) {
			best = g
		}
	}
	return best
}
