package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qecsim/qecsimext/qec"
	_ "github.com/qecsim/qecsimext/qec/threequbit" // registers ext_3qubit components
	"github.com/qecsim/qecsimext/qec/trace"
)

// runFlags holds the `run` subcommand's flags.
type runFlags struct {
	maxRuns     int    // Maximum number of trials per error probability
	maxFailures int    // Maximum number of logical failures per error probability
	randomSeed  int64  // Seed for the error generator
	outputPath  string // JSON output file; must not already exist
	configPath  string // YAML run config; replaces positional arguments
	logLevel    string // Log verbosity level
	traceLevel  string // Per-trial trace verbosity
}

var flags runFlags

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "qecsimext",
	Short: "Monte Carlo simulator for stabilizer codes with plugin components",
}

// runCmd simulates error correction using parameters from CLI arguments or a config file
var runCmd = &cobra.Command{
	Use:   "run [CODE ERROR_MODEL DECODER ERROR_PROBABILITY...]",
	Short: "Simulate error correction for a code, error model and decoder",
	Args: func(cmd *cobra.Command, args []string) error {
		if flags.configPath != "" {
			if len(args) > 0 {
				return fmt.Errorf("positional arguments cannot be combined with --config")
			}
			return nil
		}
		return cobra.MinimumNArgs(4)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(flags.logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", flags.logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(flags.traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", flags.traceLevel)
		}

		cfg, err := flags.runConfig(args, cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}
		if flags.outputPath != "" {
			if _, err := os.Stat(flags.outputPath); err == nil {
				logrus.Fatalf("Output file %s already exists", flags.outputPath)
			}
		}

		data, err := simulate(cmd.Context(), cfg, trace.TraceLevel(flags.traceLevel))
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if err := qec.WriteRunData(os.Stdout, data); err != nil {
			logrus.Fatalf("%v", err)
		}
		if flags.outputPath != "" {
			if err := saveRunData(flags.outputPath, data); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Run data written to %s", flags.outputPath)
		}
		logrus.Info("Simulation complete.")
	},
}

// runConfig assembles the run configuration from --config or positional
// arguments. Explicitly set limit and seed flags override the config file.
func (f runFlags) runConfig(args []string, changed func(name string) bool) (*qec.RunConfig, error) {
	var cfg *qec.RunConfig
	if f.configPath != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("positional arguments cannot be combined with --config")
		}
		loaded, err := qec.LoadRunConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		if len(args) < 4 {
			return nil, fmt.Errorf("expected CODE ERROR_MODEL DECODER ERROR_PROBABILITY..., got %d arguments", len(args))
		}
		probabilities, err := parseProbabilities(args[3:])
		if err != nil {
			return nil, err
		}
		cfg = &qec.RunConfig{
			Code:               args[0],
			ErrorModel:         args[1],
			Decoder:            args[2],
			ErrorProbabilities: probabilities,
			MaxRuns:            f.maxRuns,
			MaxFailures:        f.maxFailures,
		}
	}

	if changed("max-runs") {
		cfg.MaxRuns = f.maxRuns
	}
	if changed("max-failures") {
		cfg.MaxFailures = f.maxFailures
	}
	if changed("random-seed") {
		seed := f.randomSeed
		cfg.RandomSeed = &seed
	}
	return cfg, nil
}

func parseProbabilities(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		p, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("error probability %q is not a number", a)
		}
		out = append(out, p)
	}
	return out, nil
}

// simulate runs every configured error probability concurrently. With trial
// tracing each probability's trace summary is logged; the draws are the same
// either way.
func simulate(ctx context.Context, cfg *qec.RunConfig, level trace.TraceLevel) ([]*qec.RunData, error) {
	code, errorModel, decoder, err := cfg.Components()
	if err != nil {
		return nil, err
	}

	if level != trace.TraceLevelTrials {
		return qec.Sweep(ctx, code, errorModel, decoder, cfg.ErrorProbabilities, cfg.Options())
	}

	results, traces, err := qec.SweepTraced(ctx, code, errorModel, decoder, cfg.ErrorProbabilities, cfg.Options())
	if err != nil {
		return nil, err
	}
	for _, tr := range traces {
		logrus.Info(traceSummaryLine(tr))
	}
	return results, nil
}

// traceSummaryLine formats a trace summary with syndrome and failing error
// counts in sorted order.
func traceSummaryLine(tr *trace.TrialTrace) string {
	s := trace.Summarize(tr)
	return fmt.Sprintf("trace p=%v: trials=%d failures=%d failure_rate=%.6f syndromes=[%s] failing_errors=[%s]",
		tr.Probability, s.TotalTrials, s.FailureCount, s.FailureRate,
		countList(s.SyndromeDistribution), countList(s.FailingErrors))
}

func countList(counts map[string]int) string {
	items := make([]string, 0, len(counts))
	for k, n := range counts {
		items = append(items, fmt.Sprintf("%s=%d", k, n))
	}
	return strings.Join(sortedStrings(items), " ")
}

// Execute runs the CLI root command. SIGINT/SIGTERM cancel a run between trials.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVarP(&flags.maxRuns, "max-runs", "r", 0, "Maximum number of runs per error probability (default 1 if no max-failures)")
	runCmd.Flags().IntVarP(&flags.maxFailures, "max-failures", "f", 0, "Maximum number of logical failures per error probability")
	runCmd.Flags().Int64VarP(&flags.randomSeed, "random-seed", "s", 0, "Random seed for error generation (default: time-based)")
	runCmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Write run data JSON to this file (must not exist)")
	runCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML run configuration file (replaces positional arguments)")
	runCmd.Flags().StringVar(&flags.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&flags.traceLevel, "trace", "none", "Trial trace level (none, trials)")
	runCmd.Long = "Simulate error correction for the given components at each error probability.\n\n" + componentHelp()

	// Attach `run` and `list` as subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}
