// Package report prints decade-aligned summaries of a completed run.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/culturesim/culturesim/internal/entropy"
)

// Table writes one row per decade label, sampling the grid point nearest each
// decade boundary. Works for any (decades, samples) combination; labels
// beyond the grid span clamp to the final sample.
func Table(w io.Writer, res *entropy.Result, labels []string) error {
	if _, err := fmt.Fprintln(w, "Decade | E(dynamic) | R     | Static exp(D)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 43)); err != nil {
		return err
	}

	for i, label := range labels {
		idx := res.Grid.NearestIndex(float64(i))

		_, err := fmt.Fprintf(w, "%-6s | %6.2f     | %.2f  | %6.2f\n",
			label,
			res.Entropy[idx],
			res.Recognition[idx],
			math.Exp(res.Forcing[idx]),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
