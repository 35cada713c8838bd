// Package bench parses ISCAS-85-style BENCH netlists into a
// circuit.Circuit and writes generated test vectors back out. It is an
// external collaborator to the core engine, not part of it.
package bench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

var (
	inputRegex  = regexp.MustCompile(`^INPUT\((\w+)\)$`)
	outputRegex = regexp.MustCompile(`^OUTPUT\((\w+)\)$`)
	gateRegex   = regexp.MustCompile(`^(\w+)\s*=\s*(\w+)\((.+)\)$`)
)

// outputPinPrefix names the internal net synthesized for every
// declared OUTPUT(name).
const outputPinPrefix = "output_pin_"

// Parse reads filename as a BENCH netlist and returns a finalized
// Circuit (its evaluation order has already been computed).
func Parse(filename string) (*circuit.Circuit, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	c := circuit.NewCircuit(name)

	lines := make(map[string]*circuit.Line)
	var outputNames []string

	declare := func(n string, t circuit.LineType) *circuit.Line {
		if l, ok := lines[n]; ok {
			return l
		}
		l := &circuit.Line{Name: n, Type: t}
		lines[n] = l
		c.AddLine(l)
		return l
	}

	scanner := bufio.NewScanner(f)
	var raw []string
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		raw = append(raw, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	// First pass: declare every net (inputs, declared outputs as plain
	// nets for now, gate outputs, gate inputs).
	for _, text := range raw {
		switch {
		case inputRegex.MatchString(text):
			m := inputRegex.FindStringSubmatch(text)
			declare(m[1], circuit.PrimaryInput)

		case outputRegex.MatchString(text):
			m := outputRegex.FindStringSubmatch(text)
			declare(m[1], circuit.Normal)
			outputNames = append(outputNames, m[1])

		case gateRegex.MatchString(text):
			m := gateRegex.FindStringSubmatch(text)
			declare(m[1], circuit.Normal)
			for _, in := range strings.Split(m[3], ",") {
				declare(strings.TrimSpace(in), circuit.Normal)
			}
		}
	}

	// Second pass: build gates.
	gateID := 0
	for _, text := range raw {
		m := gateRegex.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		out := lines[m[1]]
		gateType, err := parseGateType(m[2])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}

		var ins []*circuit.Line
		for _, in := range strings.Split(m[3], ",") {
			ins = append(ins, lines[strings.TrimSpace(in)])
		}

		gate := &circuit.Gate{Name: fmt.Sprintf("g%d", gateID), Type: gateType, Inputs: ins, Output: out}
		gateID++
		c.AddGate(gate)
	}

	// Third pass: synthesize the OUTPUT pseudo-gate for each declared
	// output — a dedicated BUFF-like node whose input is the named net
	// and whose own net is output_pin_<name>, marked as the actual
	// primary output and excluded from fault enumeration.
	for _, name := range outputNames {
		driven := lines[name]
		pinName := outputPinPrefix + name
		pin := declareOutputPin(c, pinName)

		gate := &circuit.Gate{
			Name:        "pin_" + name,
			Type:        circuit.BUF,
			Inputs:      []*circuit.Line{driven},
			Output:      pin,
			IsOutputPin: true,
		}
		gateID++
		c.AddGate(gate)
	}

	if err := c.Finalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func declareOutputPin(c *circuit.Circuit, name string) *circuit.Line {
	l := &circuit.Line{Name: name, Type: circuit.PrimaryOutput}
	c.AddLine(l)
	return l
}

func parseGateType(name string) (circuit.GateType, error) {
	switch strings.ToUpper(name) {
	case "AND":
		return circuit.AND, nil
	case "OR":
		return circuit.OR, nil
	case "NOT", "INV":
		return circuit.NOT, nil
	case "NAND":
		return circuit.NAND, nil
	case "NOR":
		return circuit.NOR, nil
	case "XOR":
		return circuit.XOR, nil
	case "XNOR":
		return circuit.XNOR, nil
	case "BUF", "BUFF":
		return circuit.BUF, nil
	default:
		return 0, fmt.Errorf("unsupported gate type %q", name)
	}
}

// ParseFault parses a fault string such as "a/0" or "net34/1" against
// an already-parsed circuit.
func ParseFault(faultStr string, c *circuit.Circuit) (circuit.Fault, error) {
	parts := strings.SplitN(faultStr, "/", 2)
	if len(parts) != 2 {
		return circuit.Fault{}, fmt.Errorf("invalid fault string %q, want name/0 or name/1", faultStr)
	}

	var site *circuit.Line
	for _, l := range c.Lines {
		if l.Name == parts[0] {
			site = l
			break
		}
	}
	if site == nil {
		return circuit.Fault{}, fmt.Errorf("net %q not found", parts[0])
	}

	switch parts[1] {
	case "0":
		return circuit.Fault{Site: site, Type: circuit.Zero}, nil
	case "1":
		return circuit.Fault{Site: site, Type: circuit.One}, nil
	default:
		return circuit.Fault{}, fmt.Errorf("invalid fault type %q, want 0 or 1", parts[1])
	}
}
