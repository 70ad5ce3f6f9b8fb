package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	ID          string             `json:"id"`
	Samples     int                `json:"samples"`
	Dt          float64            `json:"dt"`
	Times       []float64          `json:"times"`
	Years       []float64          `json:"years"`
	Forcing     []float64          `json:"forcing"`
	Entropy     []float64          `json:"entropy"`
	Recognition []float64          `json:"recognition"`
	Summary     map[string]float64 `json:"summary"`
}

// ExportJSON writes a saved run as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, series *Series) error {
	data := ExportData{
		ID:          meta.ID,
		Samples:     meta.Samples,
		Dt:          meta.Dt,
		Times:       series.Times,
		Years:       series.Years,
		Forcing:     series.Forcing,
		Entropy:     series.Entropy,
		Recognition: series.Recognition,
		Summary:     meta.Summary,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
