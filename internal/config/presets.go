package config

import "sort"

// Presets are named driver scenarios. Values not set here fall back to the
// defaults when the preset is applied.
var Presets = map[string]func() *Config{
	// The 1950-2030 reference trajectory.
	"baseline": DefaultConfig,

	// Substrate stability holds; extraction and volatility stay moderate.
	"stable": func() *Config {
		cfg := DefaultConfig()
		cfg.Drivers = DriversConfig{
			Stability:  []float64{0.85, 0.80, 0.80, 0.75, 0.75, 0.70, 0.70, 0.70},
			Extraction: []float64{0.15, 0.25, 0.30, 0.35, 0.40, 0.40, 0.45, 0.45},
			Volatility: []float64{0.20, 0.25, 0.30, 0.30, 0.35, 0.35, 0.40, 0.40},
		}
		return cfg
	},

	// Extraction and volatility saturate early while stability collapses.
	"runaway": func() *Config {
		cfg := DefaultConfig()
		cfg.Drivers = DriversConfig{
			Stability:  []float64{0.60, 0.40, 0.25, 0.15, 0.10, 0.05, 0.05, 0.05},
			Extraction: []float64{0.50, 0.75, 0.90, 0.95, 1.00, 1.00, 1.00, 1.00},
			Volatility: []float64{0.55, 0.75, 0.90, 0.95, 1.00, 1.00, 1.00, 1.00},
		}
		return cfg
	},
}

func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
