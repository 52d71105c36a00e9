// Package main is the entry point for the keysweep CLI.
//
// keysweep probes a Google Maps API key against the Maps web-service
// endpoints and reports which services accept it.
//
// Usage:
//
//	keysweep AIzaSyDxxxxx1234567890abcdefg           # test one key
//	keysweep keys.txt --csv                           # test every key in a file
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamzaov/keysweep/internal/catalog"
	"github.com/hamzaov/keysweep/internal/config"
	"github.com/hamzaov/keysweep/internal/evaluate"
	"github.com/hamzaov/keysweep/internal/logging"
	"github.com/hamzaov/keysweep/internal/probe"
	"github.com/hamzaov/keysweep/internal/runner"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var exportCSV bool

	cmd := &cobra.Command{
		Use:   "keysweep <api-key|file.txt>",
		Short: "Test Google Maps API keys against the Maps web-service endpoints",
		Long: `keysweep tests Google Maps API keys by calling multiple Maps
web-service endpoints and reporting which services are enabled or denied.

Arguments:
  <api-key>    Single Google Maps API key starting with 'AIza'
  <file.txt>   Text file containing one or more API keys to test

Examples:
  keysweep AIzaSyDxxxxx1234567890abcdefg
  keysweep keys.txt --csv`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(cmd, args[0], exportCSV)
		},
	}
	cmd.Flags().BoolVar(&exportCSV, "csv", false, "export results to CSV files")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "keysweep %s\n  commit: %s\n  built:  %s\n", version, commit, date)
		},
	})
	return cmd
}

func run(cmd *cobra.Command, arg string, exportCSV bool) error {
	cfg := config.Defaults()
	cfg.ExportCSV = exportCSV

	logger, err := logging.NewLogger(cfg.LogDir, zap.InfoLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ev := evaluate.New(logger, catalog.Default(), probe.NewHTTP(cfg.ProbeTimeout), cfg.SweepConcurrency)
	r := &runner.Runner{
		Logger:    logger,
		Out:       cmd.OutOrStdout(),
		Evaluator: ev,
		Workers:   cfg.PoolBound,
		ExportCSV: cfg.ExportCSV,
		ExportDir: cfg.ExportDir,
	}
	return r.Run(ctx, arg)
}

// exitCode maps run errors onto the process exit code: 1 when a bulk
// file yielded no keys, 2 for any other failure.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, runner.ErrNoKeys) {
		return 1
	}
	return 2
}

func main() {
	root := newRootCmd()
	os.Exit(exitCode(root.Execute()))
}
