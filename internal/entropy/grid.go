package entropy

import (
	"fmt"
	"math"
)

// Grid is a uniform time discretization of [0, decades] with a precomputed
// decade index per sample. Times are strictly increasing with constant
// spacing Dt.
type Grid struct {
	Times   []float64
	Decades []int
	Dt      float64
}

// NewGrid builds a grid of samples points spanning [0, decades].
// samples must be at least 2 so Dt is defined and positive.
func NewGrid(decades, samples int) (*Grid, error) {
	if decades < 1 {
		return nil, ErrNoDecades
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleCount, samples)
	}

	g := &Grid{
		Times:   make([]float64, samples),
		Decades: make([]int, samples),
		Dt:      float64(decades) / float64(samples-1),
	}

	for i := range g.Times {
		t := float64(decades) * float64(i) / float64(samples-1)
		g.Times[i] = t

		idx := int(math.Floor(t))
		if idx < 0 {
			idx = 0
		}
		if idx >= decades {
			idx = decades - 1
		}
		g.Decades[i] = idx
	}

	return g, nil
}

func (g *Grid) Len() int {
	return len(g.Times)
}

// NearestIndex returns the index of the grid sample closest to t. The grid is
// uniform, so the answer is a rounded division clamped to the valid range.
func (g *Grid) NearestIndex(t float64) int {
	i := int(math.Round(t / g.Dt))
	if i < 0 {
		i = 0
	}
	if i >= len(g.Times) {
		i = len(g.Times) - 1
	}
	return i
}
