package main

import (
	"sync"

	"github.com/pthm-cable/flappy/config"
	"github.com/pthm-cable/flappy/game"
	"github.com/pthm-cable/flappy/telemetry"
)

// FitnessEvaluator runs headless games and scores parameter vectors.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config

	mu   sync.Mutex
	last EvalSummary
}

// EvalSummary aggregates one evaluation over all seeds.
type EvalSummary struct {
	MeanBestScore  float64
	MeanScore      float64 // mean final score per generation
	MeanGeneration float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// Last returns the summary of the most recent evaluation.
func (fe *FitnessEvaluator) Last() EvalSummary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// runResult holds the results from a single game run.
type runResult struct {
	bestScore   int
	generations []telemetry.GenerationStats
}

// Evaluate computes fitness for a raw parameter vector (lower = better):
// the negated best score averaged over seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)
	cfg = cfg.Clone()

	// One game per goroutine; each owns its RNG and world.
	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var sum EvalSummary
	for _, r := range results {
		sum.MeanBestScore += float64(r.bestScore)
		sum.MeanScore += meanScore(r.generations)
		sum.MeanGeneration += float64(len(r.generations) + 1)
	}
	n := float64(len(fe.seeds))
	sum.MeanBestScore /= n
	sum.MeanScore /= n
	sum.MeanGeneration /= n

	fe.mu.Lock()
	fe.last = sum
	fe.mu.Unlock()

	return -sum.MeanBestScore
}

// runSimulation runs one headless game for maxTicks.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) *runResult {
	result := &runResult{}

	g := game.NewGameWithOptions(game.Options{
		Seed:   seed,
		Config: cfg,
		StatsCallback: func(stats telemetry.GenerationStats) {
			result.generations = append(result.generations, stats)
		},
	})
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.Step()
	}

	result.bestScore = g.BestScore()
	return result
}

func meanScore(gens []telemetry.GenerationStats) float64 {
	if len(gens) == 0 {
		return 0
	}
	total := 0
	for _, s := range gens {
		total += s.Score
	}
	return float64(total) / float64(len(gens))
}
