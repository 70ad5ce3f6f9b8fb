package entropy

import "math"

// Params govern the entropy evolution and the recognition transform.
type Params struct {
	Gamma  float64 // compounding / self-reinforcement
	Lambda float64 // relaxation rate toward exp(D)
	K      float64 // recognition decay strength
	RMax   float64 // recognition ceiling
	E0     float64 // initial entropy
}

// Integrate advances the entropy state across the grid with explicit forward
// Euler. The state is a single scalar carried forward step by step; each
// value depends only on the previous one and the forcing at that sample.
//
// The instantaneous equilibrium exp(D) is not clamped. Under sustained
// positive forcing the state grows without bound; with checkFinite set the
// loop aborts with a StepError wrapping ErrDiverged once the state leaves
// the finite range. It never saturates the value.
func Integrate(g *Grid, forcing []float64, p Params, checkFinite bool) ([]float64, error) {
	if len(forcing) != g.Len() {
		return nil, ErrSeriesLength
	}

	e := make([]float64, g.Len())
	e[0] = p.E0

	for i := 1; i < len(e); i++ {
		inst := math.Exp(forcing[i])
		de := p.Gamma*e[i-1] + p.Lambda*(inst-e[i-1])
		e[i] = e[i-1] + de*g.Dt

		if checkFinite && !isFinite(e[i]) {
			return nil, &StepError{Step: i, Time: g.Times[i], Wrapped: ErrDiverged}
		}
	}

	return e, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
