package circuit

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// computeOrder mirrors the gate DAG into a gonum directed graph and
// returns a topological evaluation order. It is the one place the
// circuit's DAG invariant is actually checked: a cycle comes back as
// an error here rather than surfacing as an infinite loop deep inside
// simulation or SCOAP.
func computeOrder(gates map[int]*Gate) ([]*Gate, error) {
	g := simple.NewDirectedGraph()
	for id := range gates {
		g.AddNode(simple.Node(id))
	}
	for _, gate := range gates {
		for _, in := range gate.Inputs {
			if in.InputGate != nil {
				g.SetEdge(g.NewEdge(simple.Node(in.InputGate.ID), simple.Node(gate.ID)))
			}
		}
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		return nil, fmt.Errorf("gate graph is not a DAG: %w", err)
	}

	order := make([]*Gate, 0, len(sorted))
	for _, n := range sorted {
		order = append(order, gates[int(n.ID())])
	}
	return order, nil
}

// FanoutStems returns every line that drives more than one gate,
// whether or not its branches reconverge later. This is purely descriptive
// (used for coverage-report statistics); PODEM's single-path backtrace
// does not need the free/bound line classification FAN builds on top
// of this same fact.
func (c *Circuit) FanoutStems() []*Line {
	var stems []*Line
	for _, id := range orderedLineIDs(c.Lines) {
		line := c.Lines[id]
		if len(line.OutputGates) > 1 {
			stems = append(stems, line)
		}
	}
	return stems
}

func orderedLineIDs(lines map[int]*Line) []int {
	ids := make([]int, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
