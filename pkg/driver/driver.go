// Package driver iterates a circuit's fault list end to end: reset,
// generate, record, repeat, optionally sharded across a bounded
// worker pool, and aggregates a coverage report.
package driver

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fyerfyer/podem-atpg/pkg/algorithm"
	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// Result is one fault's outcome.
type Result struct {
	Fault  circuit.Fault
	Status algorithm.Status
	Vector map[string]circuit.LogicValue
}

// Report summarizes a full fault-list run.
type Report struct {
	Total       int
	Detected    int
	Untestable  int
	Aborted     int
	FanoutStems int
	Results     []Result
}

// Coverage returns the fraction of faults detected, 0 when Total is 0.
func (r Report) Coverage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Detected) / float64(r.Total)
}

// Options configures a Run.
type Options struct {
	Workers      int
	MaxDecisions int
	Log          zerolog.Logger
}

// Run generates a test (or determines untestability) for every fault
// in c, sequentially when opts.Workers <= 1, or otherwise with one
// goroutine per fault, at most opts.Workers running at once, each
// operating on its own Circuit.Clone(). Results are always returned in fault-enumeration order,
// regardless of shard completion order, so coverage counts never
// depend on scheduling.
func Run(ctx context.Context, c *circuit.Circuit, opts Options) (Report, error) {
	faults := c.Faults()
	results := make([]Result, len(faults))

	if opts.Workers <= 1 {
		for i, fault := range faults {
			results[i] = generateOne(c, fault, opts)
		}
	} else {
		if err := runSharded(ctx, c, faults, results, opts); err != nil {
			return Report{}, err
		}
	}

	report := summarize(faults, results)
	report.FanoutStems = len(c.FanoutStems())
	return report, nil
}

func runSharded(ctx context.Context, c *circuit.Circuit, faults []circuit.Fault, results []Result, opts Options) error {
	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, opts.Workers)

	for i, fault := range faults {
		i, fault := i, fault
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			worker := c.Clone()
			local := circuit.Fault{Site: worker.Lines[fault.Site.ID], Type: fault.Type}
			results[i] = generateOne(worker, local, opts)
			results[i].Fault = fault
			return nil
		})
	}

	return g.Wait()
}

func generateOne(c *circuit.Circuit, fault circuit.Fault, opts Options) Result {
	c.Reset()
	engine := algorithm.NewEngine(c, opts.Log)
	if opts.MaxDecisions > 0 {
		engine.MaxDecisions = opts.MaxDecisions
	}

	vector, status, err := engine.Generate(fault)
	if err != nil {
		opts.Log.Error().Err(err).Stringer("fault", fault).Msg("test generation failed")
		return Result{Fault: fault, Status: algorithm.Failed}
	}
	return Result{Fault: fault, Status: status, Vector: vector}
}

func summarize(faults []circuit.Fault, results []Result) Report {
	report := Report{Total: len(faults), Results: results}
	for _, r := range results {
		switch r.Status {
		case algorithm.Succeeded:
			report.Detected++
		case algorithm.Aborted:
			report.Aborted++
		default:
			report.Untestable++
		}
	}
	return report
}

// WriteReport renders a human-readable coverage summary.
func WriteReport(report Report) string {
	lines := make([]string, 0, len(report.Results)+1)
	lines = append(lines, fmt.Sprintf(
		"faults=%d detected=%d untestable=%d aborted=%d coverage=%.2f%% fanout_stems=%d",
		report.Total, report.Detected, report.Untestable, report.Aborted, report.Coverage()*100, report.FanoutStems,
	))

	sorted := make([]Result, len(report.Results))
	copy(sorted, report.Results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fault.Site.ID < sorted[j].Fault.Site.ID
	})
	for _, r := range sorted {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Fault, r.Status))
	}

	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}
