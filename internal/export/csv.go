// Package export writes per-key probe results to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hamzaov/keysweep/internal/domain"
	"github.com/hamzaov/keysweep/internal/evaluate"
)

// CSV exports one file per key report into Dir (working directory
// when empty), named maps_key_results_<key prefix>_<timestamp>.csv.
type CSV struct {
	Dir string
}

// Export writes rep and returns the created file's path. Rows follow
// the report's result order, one per catalog endpoint.
func (c CSV) Export(rep domain.KeyReport) (string, error) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("maps_key_results_%s_%s.csv",
		evaluate.Prefix(rep.Key), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	_ = w.Write([]string{"API Key", "Endpoint", "Status", "Response Time (s)"})
	for _, r := range rep.Results {
		_ = w.Write([]string{
			rep.Key,
			r.Endpoint,
			r.Status,
			strconv.FormatFloat(r.Elapsed, 'f', 2, 64),
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
