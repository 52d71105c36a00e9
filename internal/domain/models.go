package domain

import "regexp"

// Classification is the verdict for a single endpoint probe.
type Classification int

const (
	Enabled Classification = iota
	Denied
	RateLimited
	Disabled
	Error
)

func (c Classification) String() string {
	switch c {
	case Enabled:
		return "ENABLED"
	case Denied:
		return "DENIED"
	case RateLimited:
		return "RATE LIMITED"
	case Disabled:
		return "DISABLED"
	default:
		return "ERROR"
	}
}

// ProbeResult is the outcome of one GET against one catalog endpoint.
// Status carries the raw API status string ("ERROR" when the body was
// missing one or could not be parsed); Elapsed is wall-clock seconds
// rounded to two decimals.
type ProbeResult struct {
	Endpoint       string         `json:"endpoint"`
	Classification Classification `json:"classification"`
	Status         string         `json:"status"`
	Elapsed        float64        `json:"elapsed_s"`
	Preview        string         `json:"preview,omitempty"`
}

// KeyReport aggregates a full endpoint sweep for one key. Results is
// always exactly one entry per catalog endpoint, in catalog order.
type KeyReport struct {
	Key           string        `json:"key"`
	Results       []ProbeResult `json:"results"`
	EnabledCount  int           `json:"enabled_count"`
	DisabledCount int           `json:"disabled_count"`
}

// Valid reports whether at least one endpoint accepted the key.
func (r *KeyReport) Valid() bool { return r.EnabledCount > 0 }

var keyPattern = regexp.MustCompile(`^AIza[0-9A-Za-z_\-]{35}$`)

// ValidKey reports whether s is, in its entirety, a well-formed Maps API key.
func ValidKey(s string) bool { return keyPattern.MatchString(s) }
