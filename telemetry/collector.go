package telemetry

// Collector accumulates events within a generation and produces
// GenerationStats when the generation goes extinct.
type Collector struct {
	generation int
	startTick  int32
	population int
	bestScore  int

	// Event counters for the current generation
	jumps           int
	deaths          int
	championUpdated bool
	survival        []float64
}

// NewCollector creates a collector for the first generation.
func NewCollector(population int) *Collector {
	return &Collector{
		generation: 1,
		population: population,
		survival:   make([]float64, 0, population),
	}
}

// Record folds an event into the current generation.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventJump:
		c.jumps++
	case EventPipePassed:
		if ev.Value > c.bestScore {
			c.bestScore = ev.Value
		}
	case EventDeath:
		c.deaths++
		c.survival = append(c.survival, float64(ev.Value))
	case EventChampion:
		c.championUpdated = true
	}
}

// BestScore returns the highest score seen across all generations.
func (c *Collector) BestScore() int {
	return c.bestScore
}

// Flush produces the stats of the finished generation and starts the next
// one at endTick with the given population.
func (c *Collector) Flush(endTick int32, score, nextPopulation int) GenerationStats {
	mean, std, p50, p90, longest := ComputeSurvivalStats(c.survival)

	var jumpsPerBird float64
	if c.population > 0 {
		jumpsPerBird = float64(c.jumps) / float64(c.population)
	}

	stats := GenerationStats{
		Generation:      c.generation,
		StartTick:       c.startTick,
		EndTick:         endTick,
		Ticks:           endTick - c.startTick,
		Population:      c.population,
		Score:           score,
		BestScore:       c.bestScore,
		Jumps:           c.jumps,
		JumpsPerBird:    jumpsPerBird,
		Deaths:          c.deaths,
		SurvivalMean:    mean,
		SurvivalStd:     std,
		SurvivalP50:     p50,
		SurvivalP90:     p90,
		SurvivalMax:     longest,
		ChampionUpdated: c.championUpdated,
	}

	// Reset for the next generation
	c.generation++
	c.startTick = endTick
	c.population = nextPopulation
	c.jumps = 0
	c.deaths = 0
	c.championUpdated = false
	c.survival = c.survival[:0]

	return stats
}
