package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/culturesim/culturesim/internal/entropy"
)

type Config struct {
	Samples     int               `yaml:"samples"`
	BaseYear    int               `yaml:"base_year"`
	CheckFinite bool              `yaml:"check_finite"`
	Drivers     DriversConfig     `yaml:"drivers"`
	Forcing     ForcingConfig     `yaml:"forcing"`
	Dynamics    DynamicsConfig    `yaml:"dynamics"`
	Recognition RecognitionConfig `yaml:"recognition"`
}

type DriversConfig struct {
	Stability  []float64 `yaml:"stability"`
	Extraction []float64 `yaml:"extraction"`
	Volatility []float64 `yaml:"volatility"`
}

type ForcingConfig struct {
	Alpha float64 `yaml:"alpha"`
	Delta float64 `yaml:"delta"`
	Beta  float64 `yaml:"beta"`
}

type DynamicsConfig struct {
	Gamma  float64 `yaml:"gamma"`
	Lambda float64 `yaml:"lambda"`
	E0     float64 `yaml:"e0"`
}

type RecognitionConfig struct {
	K    float64 `yaml:"k"`
	RMax float64 `yaml:"r_max"`
}

func DefaultConfig() *Config {
	d := entropy.DefaultDrivers()
	return &Config{
		Samples:     entropy.DefaultSamples,
		BaseYear:    entropy.DefaultBaseYear,
		CheckFinite: true,
		Drivers: DriversConfig{
			Stability:  d.Stability,
			Extraction: d.Extraction,
			Volatility: d.Volatility,
		},
		Forcing: ForcingConfig{
			Alpha: entropy.DefaultAlpha,
			Delta: entropy.DefaultDelta,
			Beta:  entropy.DefaultBeta,
		},
		Dynamics: DynamicsConfig{
			Gamma:  entropy.DefaultGamma,
			Lambda: entropy.DefaultLambda,
			E0:     entropy.DefaultE0,
		},
		Recognition: RecognitionConfig{
			K:    entropy.DefaultK,
			RMax: entropy.DefaultRMax,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Model builds a runnable model from the file values.
func (c *Config) Model() *entropy.Model {
	return &entropy.Model{
		Drivers: entropy.Drivers{
			Stability:  c.Drivers.Stability,
			Extraction: c.Drivers.Extraction,
			Volatility: c.Drivers.Volatility,
		},
		Coeffs: entropy.Coefficients{
			Alpha: c.Forcing.Alpha,
			Delta: c.Forcing.Delta,
			Beta:  c.Forcing.Beta,
		},
		Params: entropy.Params{
			Gamma:  c.Dynamics.Gamma,
			Lambda: c.Dynamics.Lambda,
			K:      c.Recognition.K,
			RMax:   c.Recognition.RMax,
			E0:     c.Dynamics.E0,
		},
		Samples:     c.Samples,
		BaseYear:    c.BaseYear,
		CheckFinite: c.CheckFinite,
	}
}
