// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipesConfig      `yaml:"pipes"`
	Population PopulationConfig `yaml:"population"`
	Mutation   MutationConfig   `yaml:"mutation"`
	Speed      SpeedConfig      `yaml:"speed"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PlayfieldConfig holds the game canvas dimensions.
// The network panel takes the rest of the screen to the right of it.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BirdConfig holds bird geometry and physics.
// Fractions are relative to the playfield; velocities are in pixels per tick at
// ReferenceHeight and scale linearly with the actual playfield height.
type BirdConfig struct {
	XFraction       float64 `yaml:"x_fraction"`      // horizontal position, fraction of width
	WidthFraction   float64 `yaml:"width_fraction"`  // fraction of width
	HeightFraction  float64 `yaml:"height_fraction"` // fraction of height
	InitialVelocity float64 `yaml:"initial_velocity"`
	Gravity         float64 `yaml:"gravity"`       // added to velocity every tick
	JumpVelocity    float64 `yaml:"jump_velocity"` // velocity set by a jump (negative = up)
	ReferenceHeight float64 `yaml:"reference_height"`
	AngleDivisor    float64 `yaml:"angle_divisor"` // angle = atan(velocity / divisor)
}

// PipesConfig holds obstacle generation parameters.
type PipesConfig struct {
	Count           int     `yaml:"count"`            // pairs kept in the queue
	WidthFraction   float64 `yaml:"width_fraction"`   // fraction of playfield width
	SpacingFraction float64 `yaml:"spacing_fraction"` // horizontal distance between pairs
	GapFraction     float64 `yaml:"gap_fraction"`     // vertical gap, fraction of height
	SpeedDivisor    float64 `yaml:"speed_divisor"`    // step per tick = width / divisor
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Size int `yaml:"size"`
}

// MutationConfig holds mutation parameters.
type MutationConfig struct {
	Rate float64 `yaml:"rate"` // per-parameter resample probability
}

// SpeedConfig holds simulation speed controls.
type SpeedConfig struct {
	Initial        int     `yaml:"initial"`
	SwipeThreshold float64 `yaml:"swipe_threshold"` // pixels
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow             int     `yaml:"perf_window"`
	BookmarkHistorySize    int     `yaml:"bookmark_history_size"`
	StagnationGenerations  int     `yaml:"stagnation_generations"`
	BreakthroughMultiplier float64 `yaml:"breakthrough_multiplier"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Width, Height float32 // playfield

	BirdX, BirdW, BirdH float32
	BirdStartY          float32
	BirdVelocity        float32 // initial velocity
	Gravity             float32
	JumpVelocity        float32
	AngleDivisor        float32

	PipeW       float32
	PipeSpacing float32
	PipeGap     float32
	PipeStep    float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Clone returns a copy of the config with derived values recomputed.
func (c *Config) Clone() *Config {
	clone := *c
	clone.computeDerived()
	return &clone
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("playfield must have positive dimensions, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	case c.Population.Size < 1:
		return fmt.Errorf("population.size must be at least 1, got %d", c.Population.Size)
	case c.Pipes.Count < 2:
		return fmt.Errorf("pipes.count must be at least 2, got %d", c.Pipes.Count)
	case c.Mutation.Rate < 0 || c.Mutation.Rate > 1:
		return fmt.Errorf("mutation.rate must be in [0,1], got %v", c.Mutation.Rate)
	case c.Bird.ReferenceHeight <= 0:
		return fmt.Errorf("bird.reference_height must be positive, got %v", c.Bird.ReferenceHeight)
	case c.Pipes.SpeedDivisor <= 0:
		return fmt.Errorf("pipes.speed_divisor must be positive, got %v", c.Pipes.SpeedDivisor)
	}
	return nil
}

// computeDerived calculates pixel values from the loaded fractions.
func (c *Config) computeDerived() {
	w := float64(c.Playfield.Width)
	h := float64(c.Playfield.Height)
	scale := h / c.Bird.ReferenceHeight

	d := &c.Derived
	d.Width = float32(w)
	d.Height = float32(h)

	d.BirdX = float32(w * c.Bird.XFraction)
	d.BirdW = float32(w * c.Bird.WidthFraction)
	d.BirdH = float32(h * c.Bird.HeightFraction)
	d.BirdStartY = float32((h - h*c.Bird.HeightFraction) / 2)
	d.BirdVelocity = float32(c.Bird.InitialVelocity)
	d.Gravity = float32(c.Bird.Gravity * scale)
	d.JumpVelocity = float32(c.Bird.JumpVelocity * scale)
	d.AngleDivisor = float32(c.Bird.AngleDivisor)

	d.PipeW = float32(w * c.Pipes.WidthFraction)
	d.PipeSpacing = float32(w * c.Pipes.SpacingFraction)
	d.PipeGap = float32(h * c.Pipes.GapFraction)
	d.PipeStep = float32(w / c.Pipes.SpeedDivisor)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
