package bench

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// WriteVectors writes one line per fault's test vector (or its
// untestable/aborted marker) to filename, in a fixed input-name order.
func WriteVectors(filename string, inputOrder []string, records []VectorRecord) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintf(w, "# inputs: %v\n", inputOrder)
	for _, rec := range records {
		fmt.Fprintf(w, "# fault %s: %s\n", rec.Fault, rec.Status)
		if rec.Vector == nil {
			continue
		}
		for _, name := range inputOrder {
			fmt.Fprint(w, vectorChar(rec.Vector[name]), " ")
		}
		fmt.Fprint(w, "\n")
	}
	return nil
}

// VectorRecord is one fault's outcome, ready to be written or
// reported.
type VectorRecord struct {
	Fault  circuit.Fault
	Status string
	Vector map[string]circuit.LogicValue
}

func vectorChar(v circuit.LogicValue) string {
	switch v {
	case circuit.Zero:
		return "0"
	case circuit.One:
		return "1"
	default:
		return "X"
	}
}

// DeclaredInputNames returns the primary input names of c in
// declaration order: column i of a written vector corresponds to the
// i-th INPUT line in the source netlist, not to alphabetical order.
func DeclaredInputNames(c *circuit.Circuit) []string {
	names := make([]string, 0, len(c.Inputs))
	for _, in := range c.Inputs {
		names = append(names, in.Name)
	}
	return names
}
