// Package runner ties argument handling, scheduling, and report
// presentation together for the CLI.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamzaov/keysweep/internal/domain"
	"github.com/hamzaov/keysweep/internal/export"
	"github.com/hamzaov/keysweep/internal/keyscan"
	"github.com/hamzaov/keysweep/internal/render"
	"github.com/hamzaov/keysweep/internal/scheduler"
)

var (
	// ErrInvalidInput marks arguments that are neither a key nor a
	// recognized bulk file.
	ErrInvalidInput = errors.New("invalid input: provide an API key or a .txt file containing keys")

	// ErrNoKeys marks a readable bulk file with nothing to test.
	ErrNoKeys = errors.New("no valid API keys found in file")
)

// Runner resolves a CLI argument into keys, schedules their
// evaluation, and feeds completed reports to the console renderer and
// (optionally) the CSV exporter.
type Runner struct {
	Logger    *zap.Logger
	Out       io.Writer
	Evaluator scheduler.KeyEvaluator
	Workers   int
	ExportCSV bool
	ExportDir string
}

// Run evaluates the key or key file named by arg. Per-probe failures
// never surface here; only input problems and export I/O do.
func (r *Runner) Run(ctx context.Context, arg string) error {
	keys, err := r.resolve(arg)
	if err != nil {
		return err
	}

	renderer := render.Console{Out: r.Out}
	exporter := export.CSV{Dir: r.ExportDir}

	var (
		mu        sync.Mutex // serializes console output across workers
		exportErr error
	)
	sink := func(rep domain.KeyReport) {
		mu.Lock()
		defer mu.Unlock()
		renderer.Render(rep)
		if !r.ExportCSV {
			return
		}
		path, err := exporter.Export(rep)
		if err != nil {
			r.Logger.Warn("csv_export_failed", zap.Error(err))
			exportErr = multierr.Append(exportErr, err)
			return
		}
		fmt.Fprintf(r.Out, "Results saved to %s\n\n", path)
	}

	pool := scheduler.NewPool(r.Logger, r.Evaluator, r.Workers, sink)
	if _, err := pool.RunAll(ctx, keys); err != nil {
		return err
	}
	return exportErr
}

func (r *Runner) resolve(arg string) ([]string, error) {
	switch {
	case domain.ValidKey(arg):
		return []string{arg}, nil
	case strings.HasSuffix(arg, ".txt"):
		keys, err := keyscan.FromFile(arg)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoKeys, arg)
		}
		return keys, nil
	default:
		return nil, ErrInvalidInput
	}
}
