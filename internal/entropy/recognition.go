package entropy

import "math"

// Recognition maps an entropy series to coherence values R = rmax*exp(-k*E),
// independently per sample. Output is strictly decreasing in E and bounded
// in (0, rmax] for finite input.
func Recognition(e []float64, k, rmax float64) []float64 {
	out := make([]float64, len(e))
	for i, v := range e {
		out[i] = rmax * math.Exp(-k*v)
	}
	return out
}
