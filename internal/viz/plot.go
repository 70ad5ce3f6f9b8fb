package viz

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/culturesim/culturesim/internal/entropy"
)

const (
	plotWidth    = 80
	mainHeight   = 14
	driverHeight = 7
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Plot writes the two-panel chart of a finished run: the dynamic series on
// top and the raw decade drivers below. Mirrors the order of the summary
// table so the two can be read together.
func Plot(w io.Writer, res *entropy.Result, drivers entropy.Drivers) error {
	title := fmt.Sprintf("Cultural Entropy Dynamics (%.0f-%.0f)",
		res.Years[0], res.Years[len(res.Years)-1])
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w)

	main := asciigraph.PlotMany(
		[][]float64{res.Entropy, res.StaticEquilibrium(), res.Recognition},
		asciigraph.Height(mainHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Salmon, asciigraph.Blue),
		asciigraph.Caption("entropy E(t) / static exp(D) / recognition R(t)"),
	)
	fmt.Fprintln(w, main)
	fmt.Fprintln(w)

	// Expand the decade tables onto the grid so the step traces line up with
	// the panel above.
	s := make([]float64, res.Grid.Len())
	x := make([]float64, res.Grid.Len())
	f := make([]float64, res.Grid.Len())
	for j, dec := range res.Grid.Decades {
		s[j] = drivers.Stability.At(dec)
		x[j] = drivers.Extraction.At(dec)
		f[j] = drivers.Volatility.At(dec)
	}

	panel := asciigraph.PlotMany(
		[][]float64{s, x, f},
		asciigraph.Height(driverHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Orange, asciigraph.Purple),
		asciigraph.Caption("stability S / extraction X / volatility F"),
	)
	fmt.Fprintln(w, panel)
	fmt.Fprintln(w)

	fmt.Fprintln(w, legendStyle.Render("red=entropy  salmon=static exp(D)  blue=recognition  green=S  orange=X  purple=F"))
	return nil
}
