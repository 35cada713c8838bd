package algorithm

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
	"github.com/fyerfyer/podem-atpg/pkg/scoap"
)

// buildAND2 builds INPUT(a), INPUT(b), x = AND(a,b), OUTPUT(x).
func buildAND2(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.NewCircuit("and2")

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
	scoap.Compute(c)
	return c
}

func TestEngineGenerateDetectsStuckAt0(t *testing.T) {
	c := buildAND2(t)
	a, b := c.Lines[0], c.Lines[1]

	engine := NewEngine(c, zerolog.Nop())
	vector, status, err := engine.Generate(circuit.Fault{Site: a, Type: circuit.Zero})

	require.NoError(t, err)
	require.Equal(t, Succeeded, status)
	require.Equal(t, circuit.One, vector["a"])
	require.Equal(t, circuit.One, vector["b"])
	_ = b
}

func TestEngineGenerateDetectsStuckAt1(t *testing.T) {
	c := buildAND2(t)
	b := c.Lines[1]

	engine := NewEngine(c, zerolog.Nop())
	vector, status, err := engine.Generate(circuit.Fault{Site: b, Type: circuit.One})

	require.NoError(t, err)
	require.Equal(t, Succeeded, status)
	// b stuck-at-1 needs b=0 to activate, a=1 to propagate through AND.
	require.Equal(t, circuit.Zero, vector["b"])
	require.Equal(t, circuit.One, vector["a"])
}

func TestEngineRespectsMaxDecisions(t *testing.T) {
	c := buildAND2(t)
	a := c.Lines[0]

	engine := NewEngine(c, zerolog.Nop())
	engine.MaxDecisions = 0
	_, status, err := engine.Generate(circuit.Fault{Site: a, Type: circuit.Zero})

	require.NoError(t, err)
	require.Equal(t, Aborted, status)
}
