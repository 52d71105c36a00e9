package config

import "time"

type Config struct {
	ProbeTimeout     time.Duration // per-probe HTTP timeout, uniform across endpoints
	PoolBound        int           // keys evaluated simultaneously
	SweepConcurrency int           // endpoint probes in flight within one sweep
	LogDir           string        // logs directory
	ExportDir        string        // where CSV files land
	ExportCSV        bool          // write one CSV per key
}

// Defaults returns the fixed runtime settings. The tool takes no
// environment variables; only CLI flags overlay these.
func Defaults() Config {
	return Config{
		ProbeTimeout:     6 * time.Second,
		PoolBound:        3,
		SweepConcurrency: 4,
		LogDir:           "logs",
		ExportDir:        ".",
	}
}
