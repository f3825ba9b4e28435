package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pumpsim/pumpsim/sim"
	"github.com/pumpsim/pumpsim/sim/report"
	"github.com/pumpsim/pumpsim/sim/trace"
)

var flags runFlags

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pumpsim",
	Short: "Discrete-event simulator for a single gas station",
}

// runCmd executes the simulation using parameters from the config file, station input and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the gas station simulation",
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
		if flags.format != "text" && flags.format != "json" {
			logrus.Fatalf("Invalid report format: %s", flags.format)
		}

		cfg, err := flags.buildConfig(cmd.Flags(), cmd.InOrStdin())
		if err != nil {
			logrus.Fatalf("Unable to build station config: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := runSimulation(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runSimulation wires reporters, tracing and progress around one run.
func runSimulation(ctx context.Context, cfg sim.Config, stdout, stderr io.Writer) error {
	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return err
	}

	out := stdout
	if flags.outputPath != "" {
		f, err := os.Create(flags.outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	var reporters report.Multi
	switch flags.format {
	case "json":
		reporters = append(reporters, report.NewJSONReporter(out, s.RunID))
	default:
		text := report.NewTextReporter(out)
		if err := text.WriteIntro(s.Pumps.Total(), cfg.Seeds); err != nil {
			return err
		}
		if err := text.WriteHeader(); err != nil {
			return err
		}
		reporters = append(reporters, text)
	}

	var xlsx *report.XLSXReporter
	if flags.xlsxPath != "" {
		if xlsx, err = report.NewXLSXReporter(flags.xlsxPath); err != nil {
			return err
		}
		reporters = append(reporters, xlsx)
	}
	s.Reporter = reporters

	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(flags.traceLevel)})
	observers := []sim.Observer{}
	if st.Config.Enabled() {
		observers = append(observers, sim.TraceObserver(st))
	}
	if flags.progress {
		observers = append(observers, progressObserver(newProgressBar(stderr, cfg.EndingTime)))
	}
	s.Observer = sim.ChainObservers(observers...)

	runErr := s.Run(ctx)
	if xlsx != nil {
		if err := xlsx.Close(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return runErr
	}

	if st.Config.Enabled() {
		printTraceSummary(stderr, trace.Summarize(st))
	}
	return nil
}

func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Event Trace ===")
	fmt.Fprintf(w, "Events dispatched    : %d\n", summary.TotalEvents)
	for _, kind := range []sim.EventKind{sim.KindArrival, sim.KindDeparture, sim.KindReport, sim.KindEndOfSimulation} {
		fmt.Fprintf(w, "  %-18s : %d\n", kind, summary.KindDistribution[kind.String()])
	}
	fmt.Fprintf(w, "Max queue length     : %d\n", summary.MaxQueueLength)
	fmt.Fprintf(w, "Min free pumps       : %d\n", summary.MinPumpsFree)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	flags.register(runCmd.Flags())

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
