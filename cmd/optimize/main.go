// Command optimize tunes mutation rate, population size and pipe count with
// CMA-ES, scoring each candidate by the best score reached in headless runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/flappy/config"
)

// evalRow is one line of optimize_log.csv.
type evalRow struct {
	Eval           int     `csv:"eval"`
	Fitness        float64 `csv:"fitness"`
	MutationRate   float64 `csv:"mutation_rate"`
	PopulationSize int     `csv:"population_size"`
	PipeCount      int     `csv:"pipe_count"`
	MeanBestScore  float64 `csv:"mean_best_score"`
	MeanScore      float64 `csv:"mean_score"`
	MeanGeneration float64 `csv:"mean_generation"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int("max-ticks", 20000, "Simulation ticks per run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	baseCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	params := NewParamVector()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewFitnessEvaluator(params, int32(*maxTicks), evalSeeds, baseCfg)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}

	logPath := filepath.Join(*outputDir, "optimize_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			fitness := evaluator.Evaluate(raw)
			evalCount++

			clamped := params.Clamp(raw)
			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}

			summary := evaluator.Last()
			row := []evalRow{{
				Eval:           evalCount,
				Fitness:        fitness,
				MutationRate:   clamped[0],
				PopulationSize: int(clamped[1]),
				PipeCount:      int(clamped[2]),
				MeanBestScore:  summary.MeanBestScore,
				MeanScore:      summary.MeanScore,
				MeanGeneration: summary.MeanGeneration,
			}}
			var werr error
			if evalCount == 1 {
				werr = gocsv.Marshal(row, logFile)
			} else {
				werr = gocsv.MarshalWithoutHeaders(row, logFile)
			}
			if werr != nil {
				log.Printf("failed to write log row: %v", werr)
			}

			elapsed := time.Since(startTime)
			avgPerEval := elapsed / time.Duration(evalCount)
			remaining := time.Duration(*maxEvals-evalCount) * avgPerEval

			fmt.Printf("Eval %d/%d: best_score=%.1f mean_score=%.2f gens=%.0f (best=%.1f) | elapsed: %s, ETA: %s\n",
				evalCount, *maxEvals, summary.MeanBestScore, summary.MeanScore, summary.MeanGeneration, -bestFitness,
				formatDuration(elapsed), formatDuration(remaining))

			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation; seeds run in parallel
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	fmt.Printf("Starting CMA-ES optimization with %d parameters, population=%d, max_evals=%d\n",
		dim, popSize, *maxEvals)
	fmt.Printf("Seeds per evaluation: %d, ticks per run: %d\n", *seeds, *maxTicks)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if bestParams == nil {
		if result == nil {
			log.Fatal("no evaluation completed")
		}
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best mean score: %.1f\n", -bestFitness)

	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s (%s): %.4f\n", spec.Name, spec.Path, bestParams[i])
	}

	configOutPath, err := writeBestConfig(*outputDir, baseCfg, params, bestParams)
	if err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}

// writeBestConfig applies best to a copy of base and saves it as
// best_config.yaml in dir. Returns the written path.
func writeBestConfig(dir string, base *config.Config, params *ParamVector, best []float64) (string, error) {
	cfg := base.Clone()
	params.ApplyToConfig(cfg, best)
	path := filepath.Join(dir, "best_config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		return "", err
	}
	return path, nil
}
