package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Fault identifies a single stuck-at fault: a net forced to a
// determinate value regardless of what drives it.
type Fault struct {
	Site *Line
	Type LogicValue // Zero (stuck-at-0) or One (stuck-at-1)
}

func (f Fault) String() string {
	if f.Type == Zero {
		return fmt.Sprintf("%s/0", f.Site.Name)
	}
	return fmt.Sprintf("%s/1", f.Site.Name)
}

// Circuit is a DAG of gates and lines built from a parsed netlist,
// each indexed by its integer ID: the structure the rest of the
// package operates on.
type Circuit struct {
	Name  string
	Gates map[int]*Gate
	Lines map[int]*Line

	Inputs  []*Line
	Outputs []*Line

	// order is the gate evaluation order, a topological sort of the
	// gate DAG computed once at Finalize time.
	order []*Gate

	FaultSite *Line
	FaultType LogicValue

	nextGateID int
	nextLineID int
}

// NewCircuit creates an empty, named circuit.
func NewCircuit(name string) *Circuit {
	return &Circuit{
		Name:  name,
		Gates: make(map[int]*Gate),
		Lines: make(map[int]*Line),
	}
}

// AddLine registers line with the circuit, assigning it an ID and
// classifying it as a primary input/output if its Type says so.
func (c *Circuit) AddLine(line *Line) {
	line.ID = c.nextLineID
	c.nextLineID++
	c.Lines[line.ID] = line

	switch line.Type {
	case PrimaryInput:
		c.Inputs = append(c.Inputs, line)
	case PrimaryOutput:
		c.Outputs = append(c.Outputs, line)
	}
}

// AddGate registers gate with the circuit, assigning it an ID and
// wiring the fanout lists of its inputs.
func (c *Circuit) AddGate(gate *Gate) {
	gate.ID = c.nextGateID
	c.nextGateID++
	c.Gates[gate.ID] = gate

	for _, in := range gate.Inputs {
		in.AddOutputGate(gate)
	}
	gate.Output.SetInputGate(gate)
}

func (c *Circuit) GetGate(id int) *Gate { return c.Gates[id] }
func (c *Circuit) GetLine(id int) *Line { return c.Lines[id] }

// Finalize computes the gate evaluation order. It must be called once
// after the netlist is fully built and before any simulation runs. A
// cycle in the gate graph is a fatal construction error.
func (c *Circuit) Finalize() error {
	order, err := computeOrder(c.Gates)
	if err != nil {
		return fmt.Errorf("circuit %q: %w", c.Name, err)
	}
	c.order = order
	return nil
}

// Order returns the gate evaluation order computed by Finalize.
func (c *Circuit) Order() []*Gate { return c.order }

// Reset clears every line back to X and removes any injected fault.
func (c *Circuit) Reset() {
	for _, line := range c.Lines {
		line.Reset()
	}
	c.FaultSite = nil
	c.FaultType = X
}

// InjectFault marks site as stuck-at faultType. The fault is applied
// during forward evaluation: whenever site's good-circuit value is
// computed, it is overlaid against faultType to produce the carried
// five-valued signal.
func (c *Circuit) InjectFault(site *Line, faultType LogicValue) {
	c.FaultSite = site
	c.FaultType = faultType
}

// Faults enumerates every stuck-at fault in the circuit: one
// stuck-at-0 and one stuck-at-1 per primary input and per gate output,
// in insertion (ID) order, stuck-at-0 before stuck-at-1 per net. The
// OUTPUT pseudo-gate created for each declared output is excluded —
// it drives no real net in the design.
func (c *Circuit) Faults() []Fault {
	var sites []*Line

	ids := make([]int, 0, len(c.Lines))
	for id := range c.Lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	seen := make(map[int]bool)
	for _, id := range ids {
		line := c.Lines[id]
		if line.Type == PrimaryInput {
			sites = append(sites, line)
			seen[line.ID] = true
		}
	}
	for _, id := range ids {
		line := c.Lines[id]
		if seen[line.ID] {
			continue
		}
		if line.InputGate != nil && line.InputGate.IsOutputPin {
			continue
		}
		if line.InputGate != nil {
			sites = append(sites, line)
		}
	}

	faults := make([]Fault, 0, 2*len(sites))
	for _, site := range sites {
		faults = append(faults, Fault{Site: site, Type: Zero})
		faults = append(faults, Fault{Site: site, Type: One})
	}
	return faults
}

// AssignInput sets line to value, overlaying the injected fault if
// line is itself the fault site (a stuck-at fault on a primary input
// has no driving gate for evaluateWithFault to intercept, so the
// overlay has to be applied here instead).
func (c *Circuit) AssignInput(line *Line, value LogicValue) {
	if c.FaultSite != nil && line == c.FaultSite {
		value = combineFault(value.good(), c.FaultType)
	}
	line.SetValue(value)
}

// evaluateWithFault computes a gate's output, overlaying the injected
// fault if this gate drives the fault site.
func (c *Circuit) evaluateWithFault(gate *Gate) LogicValue {
	value := gate.Evaluate()
	if c.FaultSite != nil && gate.Output == c.FaultSite {
		return combineFault(value.good(), c.FaultType)
	}
	return value
}

// Simulate re-evaluates every gate, in topological order, from its
// current input values. It is the single forward pass Implication
// repeats until fixpoint. It reports whether any line's value changed
// and whether a conflict occurred (a gate recomputing a different
// determinate value than the one already assigned to its output).
func (c *Circuit) Simulate() (changed bool, conflict bool) {
	for _, gate := range c.order {
		newVal := c.evaluateWithFault(gate)
		old := gate.Output.Value

		if !old.IsAssigned() {
			if newVal.IsAssigned() {
				gate.Output.SetValue(newVal)
				changed = true
			}
			continue
		}
		if newVal.IsAssigned() && newVal != old {
			return changed, true
		}
	}
	return changed, false
}

// CheckTestStatus reports whether the fault effect has reached a
// primary output (a test vector has been found).
func (c *Circuit) CheckTestStatus() bool {
	for _, out := range c.Outputs {
		if out.IsFaulty() {
			return true
		}
	}
	return false
}

// GetCurrentTest returns the primary-input assignment of the current
// circuit state, as values a tester would actually drive: a primary
// input that is also the fault site reports its good-circuit value
// (the D/D' overlay it carries internally is an analysis artifact, not
// a signal that can be applied to a pin).
func (c *Circuit) GetCurrentTest() map[string]LogicValue {
	test := make(map[string]LogicValue, len(c.Inputs))
	for _, in := range c.Inputs {
		test[in.Name] = in.Value.good()
	}
	return test
}

// Clone produces a deep, independent copy of the circuit: a fresh set
// of Line/Gate values sharing no pointers with the original, suitable
// for handing to a driver worker goroutine.
func (c *Circuit) Clone() *Circuit {
	clone := &Circuit{
		Name:       c.Name,
		Gates:      make(map[int]*Gate, len(c.Gates)),
		Lines:      make(map[int]*Line, len(c.Lines)),
		nextGateID: c.nextGateID,
		nextLineID: c.nextLineID,
	}

	for id, line := range c.Lines {
		l := *line
		l.OutputGates = nil
		clone.Lines[id] = &l
	}
	for id, gate := range c.Gates {
		g := *gate
		g.Inputs = make([]*Line, len(gate.Inputs))
		for i, in := range gate.Inputs {
			g.Inputs[i] = clone.Lines[in.ID]
		}
		g.Output = clone.Lines[gate.Output.ID]
		clone.Gates[id] = &g
	}
	for id, gate := range clone.Gates {
		orig := c.Gates[id]
		for _, in := range orig.Inputs {
			cline := clone.Lines[in.ID]
			cline.OutputGates = append(cline.OutputGates, gate)
		}
		clone.Lines[orig.Output.ID].InputGate = gate
	}

	for _, in := range c.Inputs {
		clone.Inputs = append(clone.Inputs, clone.Lines[in.ID])
	}
	for _, out := range c.Outputs {
		clone.Outputs = append(clone.Outputs, clone.Lines[out.ID])
	}
	clone.order = make([]*Gate, len(c.order))
	for i, g := range c.order {
		clone.order[i] = clone.Gates[g.ID]
	}

	return clone
}

// String renders the circuit's current state for debugging/logging.
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "circuit %s\n", c.Name)

	b.WriteString("inputs: ")
	for _, in := range c.Inputs {
		fmt.Fprintf(&b, "%s ", in)
	}
	b.WriteString("\noutputs: ")
	for _, out := range c.Outputs {
		fmt.Fprintf(&b, "%s ", out)
	}
	b.WriteString("\nfault: ")
	if c.FaultSite != nil {
		fmt.Fprintf(&b, "%s", Fault{Site: c.FaultSite, Type: c.FaultType})
	} else {
		b.WriteString("none")
	}
	return b.String()
}
