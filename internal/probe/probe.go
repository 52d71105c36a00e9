package probe

import (
	"context"

	"github.com/hamzaov/keysweep/internal/catalog"
	"github.com/hamzaov/keysweep/internal/domain"
)

// Prober issues a single probe for one (endpoint, key) pair. Failures
// are folded into the returned result, never returned as errors.
type Prober interface {
	Probe(ctx context.Context, ep catalog.Endpoint, key string) domain.ProbeResult
}
