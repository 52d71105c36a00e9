package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamzaov/keysweep/internal/domain"
)

// countingEvaluator tracks how many sweeps are in flight at once.
type countingEvaluator struct {
	cur int32
	max int32
}

func (c *countingEvaluator) Evaluate(ctx context.Context, key string) (*domain.KeyReport, error) {
	n := atomic.AddInt32(&c.cur, 1)
	for {
		m := atomic.LoadInt32(&c.max)
		if n <= m || atomic.CompareAndSwapInt32(&c.max, m, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	atomic.AddInt32(&c.cur, -1)
	return &domain.KeyReport{
		Key:           key,
		Results:       []domain.ProbeResult{{Endpoint: "EP", Classification: domain.Enabled, Status: "OK"}},
		EnabledCount:  1,
		DisabledCount: 0,
	}, nil
}

type blockingEvaluator struct{}

func (b *blockingEvaluator) Evaluate(ctx context.Context, key string) (*domain.KeyReport, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("AIza%035d", i)
	}
	return keys
}

func TestRunAll_BoundsConcurrencyAndCompletesAll(t *testing.T) {
	ev := &countingEvaluator{}
	pool := NewPool(zap.NewNop(), ev, 3, nil)

	reports, err := pool.RunAll(context.Background(), makeKeys(5))
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(reports) != 5 {
		t.Fatalf("want 5 reports, got %d", len(reports))
	}
	if m := atomic.LoadInt32(&ev.max); m > 3 {
		t.Fatalf("pool bound violated: %d sweeps in flight", m)
	}
}

func TestRunAll_DeduplicatesKeys(t *testing.T) {
	ev := &countingEvaluator{}
	pool := NewPool(zap.NewNop(), ev, 3, nil)

	keys := makeKeys(2)
	keys = append(keys, keys[0], keys[1], keys[0])
	reports, err := pool.RunAll(context.Background(), keys)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("want 2 reports after dedupe, got %d", len(reports))
	}
}

func TestRunAll_EmptyInput(t *testing.T) {
	pool := NewPool(zap.NewNop(), &countingEvaluator{}, 3, nil)
	reports, err := pool.RunAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("want no reports, got %d", len(reports))
	}
}

func TestRunAll_SinkSeesEveryReport(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	pool := NewPool(zap.NewNop(), &countingEvaluator{}, 2, func(rep domain.KeyReport) {
		mu.Lock()
		seen[rep.Key] = true
		mu.Unlock()
	})

	keys := makeKeys(4)
	if _, err := pool.RunAll(context.Background(), keys); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	for _, k := range keys {
		if !seen[k] {
			t.Fatalf("sink never saw key %s", k)
		}
	}
}

func TestRunAll_CancellationStopsDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(zap.NewNop(), &blockingEvaluator{}, 3, nil)

	done := make(chan struct{})
	var reports []domain.KeyReport
	var err error
	go func() {
		reports, err = pool.RunAll(ctx, makeKeys(5))
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("RunAll did not return after cancellation")
	}
	if err == nil {
		t.Fatalf("want context error from cancelled run")
	}
	if len(reports) != 0 {
		t.Fatalf("abandoned sweeps must not produce reports, got %d", len(reports))
	}
}
