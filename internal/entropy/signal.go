package entropy

import "fmt"

// Signal is one exogenous driver sampled at decade granularity.
// Values are normalized to [0,1]; index i is decade i (0 = base decade).
type Signal []float64

func (s Signal) Clone() Signal {
	c := make(Signal, len(s))
	copy(c, s)
	return c
}

// At reads the value for a decade, clamping out-of-range indices to the
// nearest table edge.
func (s Signal) At(decade int) float64 {
	if decade < 0 {
		decade = 0
	}
	if decade >= len(s) {
		decade = len(s) - 1
	}
	return s[decade]
}

// Drivers bundles the three exogenous inputs of the model.
type Drivers struct {
	Stability  Signal
	Extraction Signal
	Volatility Signal
}

// Decades returns the number of decade slots the tables cover.
func (d Drivers) Decades() int {
	return len(d.Stability)
}

func (d Drivers) Validate() error {
	if len(d.Stability) == 0 {
		return ErrNoDecades
	}
	if len(d.Extraction) != len(d.Stability) || len(d.Volatility) != len(d.Stability) {
		return fmt.Errorf("%w: stability=%d extraction=%d volatility=%d",
			ErrSignalLength, len(d.Stability), len(d.Extraction), len(d.Volatility))
	}
	return nil
}

// DefaultDrivers returns the 1950s-2020s reference tables.
func DefaultDrivers() Drivers {
	return Drivers{
		Stability:  Signal{0.85, 0.65, 0.45, 0.55, 0.40, 0.35, 0.25, 0.30},
		Extraction: Signal{0.15, 0.45, 0.70, 0.80, 0.85, 0.90, 0.95, 0.95},
		Volatility: Signal{0.20, 0.50, 0.65, 0.75, 0.85, 0.90, 0.95, 1.00},
	}
}

// DecadeLabels builds display labels ("1950s", "1960s", ...) for n decades
// starting at baseYear.
func DecadeLabels(baseYear, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%ds", baseYear+i*YearsPerDecade)
	}
	return labels
}
