// Command podem generates PODEM test patterns for stuck-at faults in a
// combinational BENCH-format netlist via its "generate" subcommand.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/pkg/bench"
	podemconfig "github.com/fyerfyer/podem-atpg/pkg/config"
	"github.com/fyerfyer/podem-atpg/pkg/driver"
	"github.com/fyerfyer/podem-atpg/pkg/scoap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "podem",
		Short: "PODEM-based automatic test pattern generation",
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		reportFile string
		configFile string
		workers    int
		maxDec     int
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate PODEM test patterns for stuck-at faults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := podemconfig.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			c, err := bench.Parse(inputFile)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", inputFile, err)
			}
			scoap.Compute(c)

			report, err := driver.Run(context.Background(), c, driver.Options{
				Workers:      cfg.Workers,
				MaxDecisions: cfg.MaxDecisions,
				Log:          log,
			})
			if err != nil {
				return fmt.Errorf("running fault list: %w", err)
			}

			if err := bench.WriteVectors(outputFile, bench.DeclaredInputNames(c), toVectorRecords(report)); err != nil {
				return fmt.Errorf("writing %s: %w", outputFile, err)
			}

			summary := driver.WriteReport(report)
			if reportFile != "" {
				if err := os.WriteFile(reportFile, []byte(summary+"\n"), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", reportFile, err)
				}
			}
			log.Info().
				Int("total", report.Total).
				Int("detected", report.Detected).
				Float64("coverage", report.Coverage()*100).
				Int("fanout_stems", report.FanoutStems).
				Msg("fault coverage run complete")

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inputFile, "input", "i", "", "input BENCH netlist (required)")
	flags.StringVarP(&outputFile, "output", "o", "", "test vector output file (required)")
	flags.StringVarP(&reportFile, "report", "r", "", "coverage report output file")
	flags.StringVarP(&configFile, "config", "c", "", "optional settings file (yaml/json/toml)")
	flags.IntVar(&workers, "workers", 1, "number of fault-list shards to run concurrently")
	flags.IntVar(&maxDec, "max-decisions", 10000, "PODEM decision budget before a fault is aborted")
	flags.StringVar(&logLevel, "log-level", "info", "zerolog level (debug, info, warn, error)")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func toVectorRecords(report driver.Report) []bench.VectorRecord {
	records := make([]bench.VectorRecord, len(report.Results))
	for i, r := range report.Results {
		records[i] = bench.VectorRecord{Fault: r.Fault, Status: r.Status.String(), Vector: r.Vector}
	}
	return records
}
