package probe

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/hamzaov/keysweep/internal/catalog"
	"github.com/hamzaov/keysweep/internal/domain"
)

const (
	// previewLen caps diagnostic previews.
	previewLen = 70

	// maxBodySize caps response reads; Maps API bodies are far smaller.
	maxBodySize = 1 << 20
)

// HTTP probes endpoints with plain GET requests. One attempt per
// endpoint, no retries.
type HTTP struct {
	Client *http.Client
}

func NewHTTP(timeout time.Duration) *HTTP {
	return &HTTP{
		Client: &http.Client{Timeout: timeout},
	}
}

// Probe builds the endpoint URL for key, issues the GET, and
// classifies the response by its top-level "status" field. Transport
// and read failures classify as Error; a body without a usable status
// classifies as Disabled with status "ERROR".
func (h *HTTP) Probe(ctx context.Context, ep catalog.Endpoint, key string) domain.ProbeResult {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.URLFor(key), nil)
	if err != nil {
		return errorResult(ep, start, err)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return errorResult(ep, start, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return errorResult(ep, start, err)
	}
	elapsed := roundSeconds(time.Since(start))

	status := "ERROR"
	var payload struct {
		Status string `json:"status"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Status != "" {
		status = payload.Status
	}

	r := domain.ProbeResult{
		Endpoint: ep.Name,
		Status:   status,
		Elapsed:  elapsed,
	}
	switch status {
	case "OK", "ZERO_RESULTS":
		r.Classification = domain.Enabled
		r.Preview = preview(string(body))
	case "REQUEST_DENIED":
		r.Classification = domain.Denied
		r.Preview = status
	case "OVER_QUERY_LIMIT":
		r.Classification = domain.RateLimited
		r.Preview = status
	default:
		r.Classification = domain.Disabled
		r.Preview = status
	}
	return r
}

func errorResult(ep catalog.Endpoint, start time.Time, err error) domain.ProbeResult {
	return domain.ProbeResult{
		Endpoint:       ep.Name,
		Classification: domain.Error,
		Status:         "ERROR",
		Elapsed:        roundSeconds(time.Since(start)),
		Preview:        preview(err.Error()),
	}
}

var newlines = strings.NewReplacer("\r", " ", "\n", " ")

func preview(s string) string {
	s = newlines.Replace(s)
	if len(s) > previewLen {
		return s[:previewLen]
	}
	return s
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
