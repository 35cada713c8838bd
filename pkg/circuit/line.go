package circuit

import "fmt"

// LineType classifies a net's role in the circuit.
type LineType int

const (
	Normal LineType = iota
	PrimaryInput
	PrimaryOutput
)

// Line is a single net: the signal driven by at most one Gate (its
// InputGate) and consumed by zero or more downstream gates
// (OutputGates). It carries the current five-valued signal plus the
// SCOAP testability numbers computed once per circuit.
type Line struct {
	ID   int
	Name string
	Type LineType
	Value LogicValue

	InputGate   *Gate
	OutputGates []*Gate

	// SCOAP testability measures, populated once by pkg/scoap.
	CC0 int
	CC1 int
	CO  int

	// explored is a transient flag used by the memoized X-path DFS;
	// it is cleared at the start of each check.
	explored bool
}

func (l *Line) String() string {
	return fmt.Sprintf("%s=%s", l.Name, l.Value)
}

// SetValue assigns v to the line.
func (l *Line) SetValue(v LogicValue) {
	l.Value = v
}

// Reset clears the line back to X.
func (l *Line) Reset() {
	l.Value = X
	l.explored = false
}

// IsAssigned reports whether the line currently holds a determinate
// value.
func (l *Line) IsAssigned() bool {
	return l.Value.IsAssigned()
}

// IsFaulty reports whether the line currently carries a fault effect.
func (l *Line) IsFaulty() bool {
	return l.Value.IsFaulty()
}

// Explored reports whether the X-path search has already visited this
// line during the current check.
func (l *Line) Explored() bool { return l.explored }

// MarkExplored marks the line visited for the current X-path search.
func (l *Line) MarkExplored() { l.explored = true }

// ClearExplored resets the X-path search mark before a fresh check.
func (l *Line) ClearExplored() { l.explored = false }

// AddOutputGate registers gate as a consumer of this line.
func (l *Line) AddOutputGate(gate *Gate) {
	l.OutputGates = append(l.OutputGates, gate)
}

// SetInputGate registers gate as the sole driver of this line.
func (l *Line) SetInputGate(gate *Gate) {
	l.InputGate = gate
}
