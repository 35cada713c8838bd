package circuit

// GateType identifies a primitive's logic function.
type GateType int

const (
	AND GateType = iota
	OR
	NOT
	NAND
	NOR
	XOR
	XNOR
	BUF
)

func (t GateType) String() string {
	switch t {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case NAND:
		return "NAND"
	case NOR:
		return "NOR"
	case XOR:
		return "XOR"
	case XNOR:
		return "XNOR"
	case BUF:
		return "BUFF"
	default:
		return "UNKNOWN"
	}
}

// InversionParity is 1 for gates whose output is the complement of
// their "natural" AND/OR reading (NOT, NAND, NOR, XNOR), 0 otherwise.
// A backtrace objective flips across a gate when its InversionParity
// is 1.
func (t GateType) InversionParity() int {
	switch t {
	case NOT, NAND, NOR, XNOR:
		return 1
	default:
		return 0
	}
}

// NonControllingValue is the input value that does not, by itself,
// determine the gate's output (so every non-faulty input must be
// driven to it in order to propagate a fault through this gate).
// XOR/XNOR have no controlling value at all, but by convention treat 0
// as non-controlling (an XOR input of 0 passes the other input
// through unchanged, same role a non-controlling value plays on
// AND/OR). BUF/NOT have a single input, so the notion barely applies;
// 1 is the conventional non-controlling value for them too.
func (t GateType) NonControllingValue() LogicValue {
	switch t {
	case AND, NAND:
		return One
	case OR, NOR:
		return Zero
	case XOR, XNOR:
		return Zero
	default: // NOT, BUF
		return One
	}
}

// controllingValue is the input value that, alone, determines the
// gate's output regardless of other inputs (undefined for XOR/XNOR,
// which have no single controlling value).
func (t GateType) controllingValue() (LogicValue, bool) {
	switch t {
	case AND, NAND:
		return Zero, true
	case OR, NOR:
		return One, true
	default:
		return X, false
	}
}

// Gate is one netlist primitive: a type and its ordered input lines,
// driving a single output Line.
type Gate struct {
	ID     int
	Name   string
	Type   GateType
	Inputs []*Line
	Output *Line

	// IsOutputPin marks the synthetic BUFF pseudo-gate created for a
	// declared OUTPUT(name); it is never a fault site.
	IsOutputPin bool
}

// Evaluate computes the gate's output value from its current input
// values. Fault effects already carried by the inputs pass through the
// five-valued tables; the stuck-at overlay at this gate's own output is
// not applied here (Circuit.evaluateWithFault does that).
func (g *Gate) Evaluate() LogicValue {
	vals := make([]LogicValue, len(g.Inputs))
	for i, in := range g.Inputs {
		vals[i] = in.Value
	}

	switch g.Type {
	case AND:
		return evalAND(vals)
	case NAND:
		return evalNAND(vals)
	case OR:
		return evalOR(vals)
	case NOR:
		return evalNOR(vals)
	case XOR:
		return evalXOR(vals)
	case XNOR:
		return evalXNOR(vals)
	case NOT:
		return evalNOT(vals[0])
	case BUF:
		return evalBUF(vals[0])
	default:
		return X
	}
}

// IsSensitizable reports whether every non-faulty input of g currently
// holds the gate's non-controlling value, i.e. the faulty input(s)
// alone determine the output.
func (g *Gate) IsSensitizable() bool {
	nc := g.Type.NonControllingValue()
	for _, in := range g.Inputs {
		if in.Value.IsFaulty() {
			continue
		}
		if in.Value != nc {
			return false
		}
	}
	return true
}

// HasFaultyInput reports whether any input currently carries D or D'.
func (g *Gate) HasFaultyInput() bool {
	for _, in := range g.Inputs {
		if in.Value.IsFaulty() {
			return true
		}
	}
	return false
}
