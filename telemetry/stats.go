package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats holds aggregated statistics for one generation.
type GenerationStats struct {
	Generation int   `csv:"generation"`
	StartTick  int32 `csv:"start_tick"`
	EndTick    int32 `csv:"end_tick"`
	Ticks      int32 `csv:"ticks"`
	Population int   `csv:"population"`

	Score     int `csv:"score"`
	BestScore int `csv:"best_score"` // across all generations so far

	Jumps        int     `csv:"jumps"`
	JumpsPerBird float64 `csv:"jumps_per_bird"`
	Deaths       int     `csv:"deaths"`

	// Ticks survived by each bird
	SurvivalMean float64 `csv:"survival_mean"`
	SurvivalStd  float64 `csv:"survival_std"`
	SurvivalP50  float64 `csv:"survival_p50"`
	SurvivalP90  float64 `csv:"survival_p90"`
	SurvivalMax  float64 `csv:"survival_max"`

	ChampionUpdated bool `csv:"champion_updated"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSurvivalStats calculates mean, population standard deviation,
// median, 90th percentile and maximum of the given survival times.
func ComputeSurvivalStats(values []float64) (mean, std, p50, p90, longest float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	std = stat.PopStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	longest = sorted[n-1]

	return mean, std, p50, p90, longest
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int("start_tick", int(s.StartTick)),
		slog.Int("end_tick", int(s.EndTick)),
		slog.Int("population", s.Population),
		slog.Int("score", s.Score),
		slog.Int("best_score", s.BestScore),
		slog.Int("jumps", s.Jumps),
		slog.Float64("jumps_per_bird", s.JumpsPerBird),
		slog.Int("deaths", s.Deaths),
		slog.Float64("survival_mean", s.SurvivalMean),
		slog.Float64("survival_std", s.SurvivalStd),
		slog.Float64("survival_p50", s.SurvivalP50),
		slog.Float64("survival_p90", s.SurvivalP90),
		slog.Float64("survival_max", s.SurvivalMax),
		slog.Bool("champion_updated", s.ChampionUpdated),
	)
}

// LogStats logs the generation stats using slog.
func (s GenerationStats) LogStats() {
	slog.Info("generation_end",
		"generation", s.Generation,
		"ticks", s.Ticks,
		"score", s.Score,
		"best_score", s.BestScore,
		"jumps_per_bird", s.JumpsPerBird,
		"survival_mean", s.SurvivalMean,
		"survival_p90", s.SurvivalP90,
		"survival_max", s.SurvivalMax,
		"champion_updated", s.ChampionUpdated,
	)
}
