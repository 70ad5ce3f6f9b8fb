package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Samples != 801 {
		t.Errorf("expected 801 samples, got %d", cfg.Samples)
	}
	if cfg.BaseYear != 1950 {
		t.Errorf("expected base year 1950, got %d", cfg.BaseYear)
	}
	if len(cfg.Drivers.Stability) != 8 {
		t.Errorf("expected 8 decades, got %d", len(cfg.Drivers.Stability))
	}
	if cfg.Forcing.Beta != 1.5 {
		t.Errorf("expected beta 1.5, got %f", cfg.Forcing.Beta)
	}
	if cfg.Dynamics.E0 != 0.4 {
		t.Errorf("expected e0 0.4, got %f", cfg.Dynamics.E0)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")

	cfg := DefaultConfig()
	cfg.Samples = 401
	cfg.Dynamics.Gamma = 0.35

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Samples != 401 {
		t.Errorf("expected 401 samples, got %d", loaded.Samples)
	}
	if loaded.Dynamics.Gamma != 0.35 {
		t.Errorf("expected gamma 0.35, got %f", loaded.Dynamics.Gamma)
	}
	if len(loaded.Drivers.Volatility) != 8 {
		t.Errorf("driver tables lost in roundtrip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("runaway")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Drivers.Extraction[4] != 1.00 {
		t.Errorf("expected saturated extraction, got %f", cfg.Drivers.Extraction[4])
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(names))
	}
	if names[0] != "baseline" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestModelFromConfig(t *testing.T) {
	m := DefaultConfig().Model()

	res, err := m.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Grid.Len() != 801 {
		t.Errorf("expected 801 samples, got %d", res.Grid.Len())
	}
	if res.Entropy[0] != 0.4 {
		t.Errorf("expected initial entropy 0.4, got %f", res.Entropy[0])
	}
}
