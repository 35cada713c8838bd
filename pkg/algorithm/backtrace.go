package algorithm

import "github.com/fyerfyer/podem-atpg/pkg/circuit"

// Backtrace walks obj back from its internal line to a single primary
// input, flipping the desired value across every inversion-parity-1
// gate it passes through. At a multi-input gate it chooses:
//   - when the objective value is the gate's non-controlling value,
//     every input must cooperate, so it follows the input hardest to
//     drive to that value (highest CC0/CC1) — finishing the hardest
//     part of the job first;
//   - when the objective value is the gate's controlling value, any
//     single input reaching it suffices, so it follows the easiest
//     input to drive there (lowest CC0/CC1).
//
// Ties are broken by input index for determinism.
func Backtrace(obj InitialObjective) (*circuit.Line, circuit.LogicValue) {
	line, value := obj.Line, obj.Value

	for line.InputGate != nil && line.Type != circuit.PrimaryInput {
		gate := line.InputGate
		if gate.Type.InversionParity() == 1 {
			value = invertBinaryValue(value)
		}

		if len(gate.Inputs) == 1 {
			line = gate.Inputs[0]
			continue
		}

		line = chooseBacktraceInput(gate, value)
	}

	return line, value
}

func invertBinaryValue(v circuit.LogicValue) circuit.LogicValue {
	if v == circuit.Zero {
		return circuit.One
	}
	return circuit.Zero
}

// chooseBacktraceInput selects which input of a multi-input gate to
// continue the backtrace through, given the value requested of the
// gate's output (before this gate's own inversion was applied by the
// caller, i.e. in AND/OR terms).
func chooseBacktraceInput(gate *circuit.Gate, requestedOutput circuit.LogicValue) *circuit.Line {
	nc := gate.Type.NonControllingValue()

	if requestedOutput == nc {
		return hardestInput(gate, nc)
	}
	return easiestInput(gate, requestedOutput)
}

// easiestInput returns the unassigned input cheapest to drive to
// value; any one of them independently produces the gate's
// controlling output.
func easiestInput(gate *circuit.Gate, value circuit.LogicValue) *circuit.Line {
	var best *circuit.Line
	for _, in := range gate.Inputs {
		if in.IsAssigned() {
			continue
		}
		if best == nil || cost(in, value) < cost(best, value) {
			best = in
		}
	}
	if best == nil {
		return gate.Inputs[0]
	}
	return best
}

// hardestInput returns the unassigned input most expensive to drive to
// value; every input must reach it, so the search should fix the
// hardest one first and let implication settle the rest.
func hardestInput(gate *circuit.Gate, value circuit.LogicValue) *circuit.Line {
	var best *circuit.Line
	for _, in := range gate.Inputs {
		if in.IsAssigned() {
			continue
		}
		if best == nil || cost(in, value) > cost(best, value) {
			best = in
		}
	}
	if best == nil {
		return gate.Inputs[0]
	}
	return best
}

func cost(line *circuit.Line, value circuit.LogicValue) int {
	if value == circuit.Zero {
		return line.CC0
	}
	return line.CC1
}
