// Package scheduler dispatches key evaluations across a bounded
// worker pool.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzaov/keysweep/internal/domain"
	"github.com/hamzaov/keysweep/internal/evaluate"
)

// KeyEvaluator runs a full endpoint sweep for one key.
type KeyEvaluator interface {
	Evaluate(ctx context.Context, key string) (*domain.KeyReport, error)
}

// Pool evaluates keys with at most Workers sweeps in flight. A key's
// sweep runs to completion on the worker that picked it up; reports
// are handed to OnReport as they complete (completion order is
// nondeterministic across keys).
type Pool struct {
	Logger    *zap.Logger
	Evaluator KeyEvaluator
	Workers   int
	OnReport  func(domain.KeyReport)
}

func NewPool(logger *zap.Logger, ev KeyEvaluator, workers int, onReport func(domain.KeyReport)) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		Logger:    logger,
		Evaluator: ev,
		Workers:   workers,
		OnReport:  onReport,
	}
}

// RunAll evaluates every distinct key exactly once and returns the
// completed reports. Duplicate keys are dropped up front so a key is
// never swept twice within one invocation. On cancellation the pool
// stops dispatching, in-flight sweeps wind down without producing
// reports, and ctx.Err() is returned alongside whatever completed.
func (p *Pool) RunAll(ctx context.Context, keys []string) ([]domain.KeyReport, error) {
	keys = dedupe(keys)
	if len(keys) == 0 {
		return nil, nil
	}

	runID := uuid.NewString()
	workers := p.Workers
	if workers > len(keys) {
		workers = len(keys)
	}
	p.Logger.Info("run_started",
		zap.String("run_id", runID),
		zap.Int("keys", len(keys)),
		zap.Int("workers", workers),
	)

	jobs := make(chan string)
	var (
		mu      sync.Mutex
		reports []domain.KeyReport
		wg      sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				start := time.Now()
				rep, err := p.Evaluator.Evaluate(ctx, key)
				if err != nil {
					p.Logger.Warn("sweep_abandoned",
						zap.String("run_id", runID),
						zap.String("key_prefix", evaluate.Prefix(key)),
						zap.Error(err),
					)
					continue
				}
				mu.Lock()
				reports = append(reports, *rep)
				mu.Unlock()
				p.Logger.Info("key_evaluated",
					zap.String("run_id", runID),
					zap.String("key_prefix", evaluate.Prefix(key)),
					zap.Bool("valid", rep.Valid()),
					zap.Int("enabled", rep.EnabledCount),
					zap.Int("disabled", rep.DisabledCount),
					zap.Duration("took", time.Since(start)),
				)
				if p.OnReport != nil {
					p.OnReport(*rep)
				}
			}
		}()
	}

	var dispatchErr error
feed:
	for _, key := range keys {
		select {
		case jobs <- key:
		case <-ctx.Done():
			dispatchErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if dispatchErr == nil {
		dispatchErr = ctx.Err()
	}
	if dispatchErr != nil {
		p.Logger.Info("run_cancelled", zap.String("run_id", runID), zap.Int("completed", len(reports)))
		return reports, dispatchErr
	}
	p.Logger.Info("run_done", zap.String("run_id", runID), zap.Int("completed", len(reports)))
	return reports, nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
