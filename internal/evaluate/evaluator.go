// Package evaluate runs a full endpoint sweep for a single key.
package evaluate

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hamzaov/keysweep/internal/catalog"
	"github.com/hamzaov/keysweep/internal/domain"
	"github.com/hamzaov/keysweep/internal/probe"
)

// Evaluator probes every catalog endpoint for one key and aggregates
// the outcomes into a KeyReport. Probes within a sweep fan out up to
// Concurrency at a time; the report's Results are reconstructed by
// catalog index, so ordering is stable regardless of completion order.
type Evaluator struct {
	Logger      *zap.Logger
	Catalog     []catalog.Endpoint
	Prober      probe.Prober
	Concurrency int
}

func New(logger *zap.Logger, cat []catalog.Endpoint, p probe.Prober, concurrency int) *Evaluator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Evaluator{
		Logger:      logger,
		Catalog:     cat,
		Prober:      p,
		Concurrency: concurrency,
	}
}

// Evaluate sweeps every endpoint with key. A denied or erroring
// endpoint never short-circuits the rest; every endpoint yields
// exactly one result. If ctx is cancelled before the sweep has issued
// all probes, no report is produced and ctx.Err() is returned.
func (e *Evaluator) Evaluate(ctx context.Context, key string) (*domain.KeyReport, error) {
	results := make([]domain.ProbeResult, len(e.Catalog))

	sem := make(chan struct{}, e.Concurrency)
	var wg sync.WaitGroup
	cancelled := false

	for i, ep := range e.Catalog {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		select {
		case <-ctx.Done():
			cancelled = true
		case sem <- struct{}{}:
		}
		if cancelled {
			break
		}
		wg.Add(1)
		go func(i int, ep catalog.Endpoint) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = e.Prober.Probe(ctx, ep, key)
		}(i, ep)
	}
	wg.Wait()

	if cancelled {
		e.Logger.Warn("sweep_cancelled", zap.String("key_prefix", Prefix(key)))
		return nil, ctx.Err()
	}

	enabled := 0
	for _, r := range results {
		if r.Classification == domain.Enabled {
			enabled++
		}
	}
	rep := &domain.KeyReport{
		Key:           key,
		Results:       results,
		EnabledCount:  enabled,
		DisabledCount: len(results) - enabled,
	}
	e.Logger.Debug("sweep_done",
		zap.String("key_prefix", Prefix(key)),
		zap.Int("enabled", rep.EnabledCount),
		zap.Int("disabled", rep.DisabledCount),
	)
	return rep, nil
}

// Prefix returns a loggable fragment of a key. Full keys are
// credentials and stay out of logs.
func Prefix(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}
