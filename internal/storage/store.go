package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/culturesim/culturesim/internal/entropy"
)

// Store persists completed runs under a base directory, one subdirectory per
// run with metadata.json and series.csv. The numeric core never touches
// this; persistence is strictly a consumer of the produced series.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Samples   int                `json:"samples"`
	Decades   int                `json:"decades"`
	BaseYear  int                `json:"base_year"`
	Dt        float64            `json:"dt"`
	Drivers   DriversData        `json:"drivers"`
	Summary   map[string]float64 `json:"summary"`
}

// DriversData keeps the input tables with the run so plots and reports can be
// reproduced from disk alone.
type DriversData struct {
	Stability  []float64 `json:"stability"`
	Extraction []float64 `json:"extraction"`
	Volatility []float64 `json:"volatility"`
}

func (s *Store) Save(m *entropy.Model, result *entropy.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Samples:   result.Grid.Len(),
		Decades:   m.Drivers.Decades(),
		BaseYear:  m.BaseYear,
		Dt:        result.Grid.Dt,
		Drivers: DriversData{
			Stability:  m.Drivers.Stability,
			Extraction: m.Drivers.Extraction,
			Volatility: m.Drivers.Volatility,
		},
		Summary: result.Summary(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "year", "forcing", "entropy", "recognition"}); err != nil {
		return "", err
	}

	for i := range result.Grid.Times {
		row := []string{
			strconv.FormatFloat(result.Grid.Times[i], 'f', 6, 64),
			strconv.FormatFloat(result.Years[i], 'f', 1, 64),
			strconv.FormatFloat(result.Forcing[i], 'f', 6, 64),
			strconv.FormatFloat(result.Entropy[i], 'f', 6, 64),
			strconv.FormatFloat(result.Recognition[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// Series holds the aligned columns read back from a saved run.
type Series struct {
	Times       []float64
	Years       []float64
	Forcing     []float64
	Entropy     []float64
	Recognition []float64
}

func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := &Series{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 5 {
			continue
		}

		vals := make([]float64, 5)
		ok := true
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		out.Times = append(out.Times, vals[0])
		out.Years = append(out.Years, vals[1])
		out.Forcing = append(out.Forcing, vals[2])
		out.Entropy = append(out.Entropy, vals[3])
		out.Recognition = append(out.Recognition, vals[4])
	}

	return out, nil
}
