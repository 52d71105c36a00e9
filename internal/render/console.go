// Package render prints key reports as plain-text tables.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hamzaov/keysweep/internal/domain"
)

// Console writes one table per key report followed by a
// VALID/INVALID summary line.
type Console struct {
	Out io.Writer
}

func (c Console) Render(rep domain.KeyReport) {
	fmt.Fprintf(c.Out, "=== Testing API key %s ===\n", rep.Key)

	tw := tabwriter.NewWriter(c.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENDPOINT\tSTATUS\tTIME (s)\tPREVIEW")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", r.Endpoint, r.Classification, r.Elapsed, r.Preview)
	}
	tw.Flush()

	verdict := "INVALID KEY"
	if rep.Valid() {
		verdict = "VALID KEY"
	}
	fmt.Fprintf(c.Out, "%s (%d enabled, %d disabled)\n\n", verdict, rep.EnabledCount, rep.DisabledCount)
}
