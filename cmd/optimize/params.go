package main

import (
	"math"

	"github.com/pthm-cable/flappy/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // rounded before use
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "mutation_rate", Path: "mutation.rate", Min: 0.02, Max: 0.6, Default: 0.2},
			{Name: "population_size", Path: "population.size", Min: 10, Max: 200, Default: 100, Integer: true},
			{Name: "pipe_count", Path: "pipes.count", Min: 2, Max: 6, Default: 4, Integer: true},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds every value and rounds integer parameters.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Max(spec.Min, math.Min(spec.Max, v[i]))
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to cfg. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Mutation.Rate = clamped[0]
	cfg.Population.Size = int(clamped[1])
	cfg.Pipes.Count = int(clamped[2])
}

// ExtractFromConfig extracts current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Mutation.Rate,
		float64(cfg.Population.Size),
		float64(cfg.Pipes.Count),
	}
}
