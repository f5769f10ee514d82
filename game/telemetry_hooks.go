package game

import (
	"log/slog"
)

// flushGeneration closes the generation's stats window and emits its
// stats, bookmarks and CSV rows.
func (g *Game) flushGeneration() {
	stats := g.collector.Flush(g.tick, g.score, g.cfg.Population.Size)
	g.lastStats = stats
	g.hasLastStats = true

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
	}

	if err := g.outputManager.WriteGeneration(stats); err != nil {
		slog.Error("failed to write generation stats", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// flushPerf emits perf stats once per perf window.
func (g *Game) flushPerf() {
	window := int32(g.cfg.Telemetry.PerfWindow)
	if window < 1 || g.tick%window != 0 {
		return
	}

	perfStats := g.perfCollector.Stats()
	if g.logStats {
		perfStats.LogStats()
	}
	if err := g.outputManager.WritePerf(perfStats, g.tick, g.generation); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
