package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Population.Size != 100 {
		t.Errorf("population.size = %d, want 100", cfg.Population.Size)
	}
	if cfg.Pipes.Count != 4 {
		t.Errorf("pipes.count = %d, want 4", cfg.Pipes.Count)
	}
	if cfg.Mutation.Rate != 0.2 {
		t.Errorf("mutation.rate = %v, want 0.2", cfg.Mutation.Rate)
	}
	if cfg.Speed.Initial != 1 {
		t.Errorf("speed.initial = %d, want 1", cfg.Speed.Initial)
	}
}

func TestDerivedAtReferenceSize(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	d := cfg.Derived

	// The default playfield is the reference size, so the per-tick values
	// come out unscaled.
	tests := []struct {
		name string
		got  float32
		want float64
	}{
		{"gravity", d.Gravity, 0.2},
		{"jump", d.JumpVelocity, -5},
		{"pipe step", d.PipeStep, 1},
		{"bird x", d.BirdX, 506 * 0.099},
		{"bird height", d.BirdH, 587 * 0.068},
		{"bird start y", d.BirdStartY, (587 - 587*0.068) / 2},
		{"pipe gap", d.PipeGap, 587 * 0.25},
		{"pipe spacing", d.PipeSpacing, 506 * 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(float64(tt.got)-tt.want) > 1e-3 {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("population:\n  size: 12\nplayfield:\n  width: 1012\n  height: 1174\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Population.Size != 12 {
		t.Errorf("population.size = %d, want 12", cfg.Population.Size)
	}
	if cfg.Pipes.Count != 4 {
		t.Errorf("pipes.count should keep default 4, got %d", cfg.Pipes.Count)
	}
	// Doubling the height doubles gravity; doubling the width doubles the step.
	if math.Abs(float64(cfg.Derived.Gravity)-0.4) > 1e-4 {
		t.Errorf("gravity = %v, want 0.4", cfg.Derived.Gravity)
	}
	if math.Abs(float64(cfg.Derived.PipeStep)-2) > 1e-4 {
		t.Errorf("pipe step = %v, want 2", cfg.Derived.PipeStep)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty population", "population:\n  size: 0\n"},
		{"single pipe", "pipes:\n  count: 1\n"},
		{"rate above one", "mutation:\n  rate: 1.5\n"},
		{"zero playfield", "playfield:\n  width: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Population.Size = 42

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Population.Size != 42 {
		t.Errorf("population.size = %d, want 42", loaded.Population.Size)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	clone := cfg.Clone()
	clone.Population.Size = 3
	if cfg.Population.Size == 3 {
		t.Error("Clone shares state with the original")
	}
}

func TestInit(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Init should fail for a missing file")
	}

	if err := Init(""); err != nil {
		t.Fatalf("Init(\"\"): %v", err)
	}
	if Cfg().Population.Size != 100 {
		t.Errorf("Cfg().Population.Size = %d, want 100", Cfg().Population.Size)
	}
}
