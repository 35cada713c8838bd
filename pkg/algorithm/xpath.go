package algorithm

import "github.com/fyerfyer/podem-atpg/pkg/circuit"

// hasXPath reports whether an X-path exists from line: a chain of
// gates with X output connecting line to some primary output. It is
// the feasibility check behind D-frontier filtering and the
// early-abort test run after every decision. The search is memoized
// per call via each line's transient explored flag (cleared here
// before use, since flags from a previous call are stale).
func hasXPath(c *circuit.Circuit, line *circuit.Line) bool {
	clearExplored(c)
	return xpathDFS(line)
}

func clearExplored(c *circuit.Circuit) {
	for _, l := range c.Lines {
		l.ClearExplored()
	}
}

func xpathDFS(line *circuit.Line) bool {
	if line.Type == circuit.PrimaryOutput {
		return true
	}
	if line.Explored() {
		return false
	}
	line.MarkExplored()

	for _, gate := range line.OutputGates {
		if gate.Output.Value != circuit.X {
			continue
		}
		if xpathDFS(gate.Output) {
			return true
		}
	}
	return false
}

// anyHasXPath reports whether any gate in gates has an X-path from
// its output to a primary output.
func anyHasXPath(c *circuit.Circuit, gates []*circuit.Gate) bool {
	for _, gate := range gates {
		if hasXPath(c, gate.Output) {
			return true
		}
	}
	return false
}
