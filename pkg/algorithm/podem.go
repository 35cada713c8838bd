// Package algorithm implements the PODEM search: activation, objective
// selection, backtrace, implication, D-frontier tracking, the X-path
// feasibility check, and backtracking, driving a Circuit to a test
// vector for one fault at a time.
package algorithm

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// Status is the terminal outcome of a single fault's test generation.
type Status int

const (
	Unactivated Status = iota
	ActivatedPropagating
	Succeeded
	Failed
	Aborted
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Aborted:
		return "aborted"
	case ActivatedPropagating:
		return "activated_propagating"
	default:
		return "unactivated"
	}
}

// DefaultMaxDecisions bounds the decision tree when the caller does
// not set one explicitly; it is large enough that only a pathological
// circuit (or a bug) would ever hit it.
const DefaultMaxDecisions = 10000

// Engine runs PODEM against a single Circuit.
type Engine struct {
	Circuit      *circuit.Circuit
	Log          zerolog.Logger
	MaxDecisions int

	dfrontier *DFrontier
	stack     decisionStack
}

// NewEngine creates a PODEM engine bound to c, logging through log.
func NewEngine(c *circuit.Circuit, log zerolog.Logger) *Engine {
	return &Engine{
		Circuit:      c,
		Log:          log.With().Str("component", "podem").Logger(),
		MaxDecisions: DefaultMaxDecisions,
		dfrontier:    NewDFrontier(c),
	}
}

// Generate runs PODEM for a single fault, assuming the circuit has
// already been Reset. It returns the primary-input test vector found
// (nil on anything but Succeeded) and the terminal status.
func (e *Engine) Generate(fault circuit.Fault) (map[string]circuit.LogicValue, Status, error) {
	e.Circuit.InjectFault(fault.Site, fault.Type)
	e.stack = nil

	status, err := e.run()
	if err != nil {
		return nil, Failed, err
	}
	if status != Succeeded {
		return nil, status, nil
	}
	return e.Circuit.GetCurrentTest(), Succeeded, nil
}

// run is the main decide/imply/backtrack loop.
func (e *Engine) run() (Status, error) {
	if err := Imply(e.Circuit); err != nil {
		return Failed, err
	}
	e.dfrontier.Update()

	decisions := 0
	for {
		if e.Circuit.CheckTestStatus() {
			e.Log.Debug().Int("decisions", decisions).Msg("test found")
			return Succeeded, nil
		}

		obj, ok := SelectObjective(e.Circuit, e.dfrontier)
		if !ok {
			ok, err := e.backtrack()
			if err != nil {
				return Failed, err
			}
			if !ok {
				return Failed, nil
			}
			continue
		}

		if decisions >= e.MaxDecisions {
			e.Log.Warn().Int("decisions", decisions).Msg("decision budget exceeded")
			return Aborted, nil
		}
		decisions++

		pi, value := Backtrace(obj)
		if pi == nil || pi.Type != circuit.PrimaryInput {
			return Failed, fmt.Errorf("backtrace did not terminate at a primary input")
		}

		ok2, err := e.decide(pi, value)
		if err != nil {
			return Failed, err
		}
		if !ok2 {
			ok3, err := e.backtrack()
			if err != nil {
				return Failed, err
			}
			if !ok3 {
				return Failed, nil
			}
		}
	}
}

// decide tries assigning value to pi, falling back to the opposite
// value on the same decision if value fails.
func (e *Engine) decide(pi *circuit.Line, value circuit.LogicValue) (bool, error) {
	pre := takeSnapshot(e.Circuit)

	if e.tryValue(pi, value) {
		e.stack.push(&decisionNode{Line: pi, Value: value, Pre: pre})
		return true, nil
	}

	alt := oppositeBinary(value)
	if e.tryValue(pi, alt) {
		e.stack.push(&decisionNode{Line: pi, Value: alt, TriedAlt: true, Pre: pre})
		return true, nil
	}

	return false, nil
}

// tryValue assigns value to line, implies, and checks the X-path
// feasibility of the resulting D-frontier; on any failure it restores
// the pre-assignment snapshot and reports false.
func (e *Engine) tryValue(line *circuit.Line, value circuit.LogicValue) bool {
	snap := takeSnapshot(e.Circuit)
	e.Circuit.AssignInput(line, value)

	if err := Imply(e.Circuit); err != nil {
		snap.restore(e.Circuit)
		return false
	}
	e.dfrontier.Update()

	if !e.dfrontier.Empty() && !anyHasXPath(e.Circuit, e.dfrontier.Gates) {
		snap.restore(e.Circuit)
		e.dfrontier.Update()
		return false
	}

	return true
}

// backtrack pops decisions until one has an untried alternative that
// succeeds, or the stack empties (the fault is untestable). Each
// attempt restores the snapshot taken right before that decision was
// first made.
func (e *Engine) backtrack() (bool, error) {
	for !e.stack.empty() {
		node := e.stack.pop()
		if node.TriedAlt {
			continue
		}

		node.Pre.restore(e.Circuit)
		e.dfrontier.Update()

		alt := oppositeBinary(node.Value)
		if e.tryValue(node.Line, alt) {
			e.stack.push(&decisionNode{Line: node.Line, Value: alt, TriedAlt: true, Pre: node.Pre})
			return true, nil
		}
	}
	return false, nil
}
