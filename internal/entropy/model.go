package entropy

import "math"

const (
	DefaultSamples  = 801
	DefaultBaseYear = 1950
	YearsPerDecade  = 10

	DefaultAlpha  = 1.0
	DefaultDelta  = 0.8
	DefaultBeta   = 1.5
	DefaultGamma  = 0.28
	DefaultLambda = 1.1
	DefaultK      = 0.75
	DefaultRMax   = 1.0
	DefaultE0     = 0.4
)

// Model holds everything a run needs: driver tables, coefficients, dynamics
// parameters and the grid resolution. Construct once, Run once.
type Model struct {
	Drivers     Drivers
	Coeffs      Coefficients
	Params      Params
	Samples     int
	BaseYear    int
	CheckFinite bool
}

// NewModel returns a model wired with the 1950s-2020s reference tables and
// constants.
func NewModel() *Model {
	return &Model{
		Drivers: DefaultDrivers(),
		Coeffs: Coefficients{
			Alpha: DefaultAlpha,
			Delta: DefaultDelta,
			Beta:  DefaultBeta,
		},
		Params: Params{
			Gamma:  DefaultGamma,
			Lambda: DefaultLambda,
			K:      DefaultK,
			RMax:   DefaultRMax,
			E0:     DefaultE0,
		},
		Samples:     DefaultSamples,
		BaseYear:    DefaultBaseYear,
		CheckFinite: true,
	}
}

// Result carries the four aligned output series plus the grid that produced
// them. Filled once by Run and read-only afterwards.
type Result struct {
	Grid        *Grid
	Years       []float64
	Forcing     []float64
	Entropy     []float64
	Recognition []float64
}

// Run executes one forward pass: discretize, force, integrate, transform.
func (m *Model) Run() (*Result, error) {
	if err := m.Drivers.Validate(); err != nil {
		return nil, err
	}

	g, err := NewGrid(m.Drivers.Decades(), m.Samples)
	if err != nil {
		return nil, err
	}

	forcing, err := Forcing(g, m.Drivers, m.Coeffs)
	if err != nil {
		return nil, err
	}

	e, err := Integrate(g, forcing, m.Params, m.CheckFinite)
	if err != nil {
		return nil, err
	}

	years := make([]float64, g.Len())
	for i, t := range g.Times {
		years[i] = float64(m.BaseYear) + t*YearsPerDecade
	}

	return &Result{
		Grid:        g,
		Years:       years,
		Forcing:     forcing,
		Entropy:     e,
		Recognition: Recognition(e, m.Params.K, m.Params.RMax),
	}, nil
}

// StaticEquilibrium returns exp(D) per sample: the entropy level the state
// relaxes toward at each instant, without the compounding dynamics.
func (r *Result) StaticEquilibrium() []float64 {
	out := make([]float64, len(r.Forcing))
	for i, d := range r.Forcing {
		out[i] = math.Exp(d)
	}
	return out
}

// Summary derives headline numbers for run metadata.
func (r *Result) Summary() map[string]float64 {
	last := len(r.Entropy) - 1

	peak := r.Entropy[0]
	for _, e := range r.Entropy {
		if e > peak {
			peak = e
		}
	}

	// First year recognition falls below half its starting value, -1 if never.
	halfYear := -1.0
	half := r.Recognition[0] / 2
	for i, rec := range r.Recognition {
		if rec < half {
			halfYear = r.Years[i]
			break
		}
	}

	return map[string]float64{
		"final_entropy":     r.Entropy[last],
		"peak_entropy":      peak,
		"final_recognition": r.Recognition[last],
		"half_coherence_yr": halfYear,
	}
}
