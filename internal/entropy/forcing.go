package entropy

// Coefficients weight the drivers in the forcing term
// D = alpha*X + delta*F - beta*S.
type Coefficients struct {
	Alpha float64 // extraction sensitivity
	Delta float64 // volatility sensitivity
	Beta  float64 // stabilizing strength
}

// Forcing evaluates D at every grid sample. Each value depends only on the
// decade the sample falls in, never on neighboring samples.
func Forcing(g *Grid, d Drivers, c Coefficients) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, g.Len())
	for j, dec := range g.Decades {
		out[j] = c.Alpha*d.Extraction.At(dec) + c.Delta*d.Volatility.At(dec) - c.Beta*d.Stability.At(dec)
	}
	return out, nil
}
