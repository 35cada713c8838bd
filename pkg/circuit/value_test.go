package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineFault(t *testing.T) {
	cases := []struct {
		good, faulty, want LogicValue
	}{
		{One, Zero, D},
		{Zero, One, DNot},
		{Zero, Zero, Zero},
		{One, One, One},
		{X, One, X},
		{Zero, X, X},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, combineFault(c.good, c.faulty))
	}
}

func TestEvalAND(t *testing.T) {
	require.Equal(t, Zero, evalAND([]LogicValue{Zero, One}))
	require.Equal(t, One, evalAND([]LogicValue{One, One}))
	require.Equal(t, X, evalAND([]LogicValue{X, One}))
	require.Equal(t, Zero, evalAND([]LogicValue{X, Zero}))
}

func TestEvalAND_FaultPropagation(t *testing.T) {
	// D on one input, non-controlling (1) on the other: AND's good
	// plane is 1&1=1, faulty plane is 0&1=0, so output carries D.
	require.Equal(t, D, evalAND([]LogicValue{D, One}))
	// D blocked by a controlling 0 on a sibling input.
	require.Equal(t, Zero, evalAND([]LogicValue{D, Zero}))
}

func TestEvalXOR_Parity(t *testing.T) {
	require.Equal(t, Zero, evalXOR([]LogicValue{Zero, Zero}))
	require.Equal(t, One, evalXOR([]LogicValue{Zero, One}))
	require.Equal(t, Zero, evalXOR([]LogicValue{One, One, Zero}))
	require.Equal(t, One, evalXOR([]LogicValue{One, One, One}))
}

func TestEvalNOT(t *testing.T) {
	require.Equal(t, One, evalNOT(Zero))
	require.Equal(t, Zero, evalNOT(One))
	require.Equal(t, DNot, evalNOT(D))
	require.Equal(t, D, evalNOT(DNot))
	require.Equal(t, X, evalNOT(X))
}

func TestLogicValueString(t *testing.T) {
	assert.Equal(t, "D'", DNot.String())
	assert.Equal(t, "X", X.String())
}
