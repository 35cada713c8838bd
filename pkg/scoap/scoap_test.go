package scoap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// buildChain builds INPUT(a), INPUT(b), x = AND(a,b), OUTPUT(x).
func buildChain(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.NewCircuit("chain")

	a := &circuit.Line{Name: "a", Type: circuit.PrimaryInput}
	b := &circuit.Line{Name: "b", Type: circuit.PrimaryInput}
	c.AddLine(a)
	c.AddLine(b)

	x := &circuit.Line{Name: "x", Type: circuit.Normal}
	c.AddLine(x)
	gate := &circuit.Gate{Name: "g0", Type: circuit.AND, Inputs: []*circuit.Line{a, b}, Output: x}
	c.AddGate(gate)

	pin := &circuit.Line{Name: "output_pin_x", Type: circuit.PrimaryOutput}
	c.AddLine(pin)
	pinGate := &circuit.Gate{Name: "pin_x", Type: circuit.BUF, Inputs: []*circuit.Line{x}, Output: pin, IsOutputPin: true}
	c.AddGate(pinGate)

	require.NoError(t, c.Finalize())
	return c
}

func TestComputeControllability(t *testing.T) {
	c := buildChain(t)
	Compute(c)

	a, b := c.Lines[0], c.Lines[1]
	require.Equal(t, 1, a.CC0)
	require.Equal(t, 1, a.CC1)

	x := c.Lines[2]
	require.Equal(t, a.CC0+1, x.CC0) // min(a.CC0,b.CC0)+1
	require.Equal(t, a.CC1+b.CC1+1, x.CC1)
}

func TestComputeObservability(t *testing.T) {
	c := buildChain(t)
	Compute(c)

	pin := c.Lines[3]
	require.Equal(t, 0, pin.CO)

	x := c.Lines[2]
	require.Equal(t, 1, x.CO) // BUF pseudo-gate: outCO(0)+1

	a := c.Lines[0]
	b := c.Lines[1]
	// AND gate: a's CO = x.CO + 1 + b.CC1
	require.Equal(t, x.CO+1+b.CC1, a.CO)
	require.Equal(t, x.CO+1+a.CC1, b.CO)
}
