package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildANDCircuit builds: INPUT(a), INPUT(b), c = AND(a, b), OUTPUT(c),
// including the output_pin_c pseudo-gate, mirroring what pkg/bench
// synthesizes for a declared OUTPUT.
func buildANDCircuit(t *testing.T) *Circuit {
	t.Helper()
	c := NewCircuit("and2")

	a := &Line{Name: "a", Type: PrimaryInput}
	b := &Line{Name: "b", Type: PrimaryInput}
	c.AddLine(a)
	c.AddLine(b)

	internal := &Line{Name: "c", Type: Normal}
	c.AddLine(internal)

	gate := &Gate{Name: "g0", Type: AND, Inputs: []*Line{a, b}, Output: internal}
	c.AddGate(gate)

	pin := &Line{Name: "output_pin_c", Type: PrimaryOutput}
	c.AddLine(pin)
	pinGate := &Gate{Name: "pin_c", Type: BUF, Inputs: []*Line{internal}, Output: pin, IsOutputPin: true}
	c.AddGate(pinGate)

	require.NoError(t, c.Finalize())
	return c
}

func TestCircuitFaultsExcludesOutputPin(t *testing.T) {
	c := buildANDCircuit(t)
	faults := c.Faults()

	// Sites: a, b (PIs) and c (the AND gate's own net) = 3 sites, 2
	// faults each; output_pin_c must not appear.
	require.Len(t, faults, 6)
	for _, f := range faults {
		require.NotEqual(t, "output_pin_c", f.Site.Name)
	}
}

func TestCircuitSimulateAndFaultOverlay(t *testing.T) {
	c := buildANDCircuit(t)
	a := c.Lines[0]
	b := c.Lines[1]
	internal := c.Lines[2]

	c.InjectFault(internal, Zero) // c stuck-at-0
	a.SetValue(One)
	b.SetValue(One)

	changed, conflict := c.Simulate()
	require.True(t, changed)
	require.False(t, conflict)
	require.Equal(t, D, internal.Value) // good=1, stuck=0 -> D
}

func TestCircuitResetClearsFaultAndValues(t *testing.T) {
	c := buildANDCircuit(t)
	a := c.Lines[0]
	c.InjectFault(a, Zero)
	a.SetValue(One)
	c.Simulate()

	c.Reset()
	require.Nil(t, c.FaultSite)
	require.Equal(t, X, a.Value)
}

func TestCircuitCloneIsIndependent(t *testing.T) {
	c := buildANDCircuit(t)
	clone := c.Clone()

	clone.Lines[0].SetValue(One)
	require.Equal(t, X, c.Lines[0].Value)
	require.NotSame(t, c.Lines[0], clone.Lines[0])
}

func TestCircuitCheckTestStatus(t *testing.T) {
	c := buildANDCircuit(t)
	require.False(t, c.CheckTestStatus())

	for _, out := range c.Outputs {
		out.Value = D
	}
	require.True(t, c.CheckTestStatus())
}
