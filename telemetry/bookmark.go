package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkRecordScore  BookmarkType = "record_score"
	BookmarkBreakthrough BookmarkType = "breakthrough"
	BookmarkStagnation   BookmarkType = "stagnation"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Generation  int          `csv:"generation"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"generation", b.Generation,
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting generations.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []GenerationStats
	historySize int
	historyIdx  int
	historyFull bool

	breakthroughMultiplier float64
	stagnationLimit        int

	recordScore     int
	sinceRecord     int  // generations since the last record score
	stagnationFired bool // reported for the current plateau
}

// NewBookmarkDetector creates a detector with the given history size.
// multiplier is the ratio to the rolling mean score that counts as a
// breakthrough; stagnation is the number of generations without a new
// record before a stagnation bookmark fires.
func NewBookmarkDetector(historySize int, multiplier float64, stagnation int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:                make([]GenerationStats, historySize),
		historySize:            historySize,
		breakthroughMultiplier: multiplier,
		stagnationLimit:        stagnation,
	}
}

// Check analyzes the latest generation and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats GenerationStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkRecordScore(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkBreakthrough(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStagnation(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats GenerationStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []GenerationStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkRecordScore(stats GenerationStats) *Bookmark {
	if stats.Score <= bd.recordScore {
		bd.sinceRecord++
		return nil
	}

	old := bd.recordScore
	bd.recordScore = stats.Score
	bd.sinceRecord = 0
	bd.stagnationFired = false

	return &Bookmark{
		Type:        BookmarkRecordScore,
		Generation:  stats.Generation,
		Tick:        stats.EndTick,
		Description: fmt.Sprintf("Score %d beats previous record %d", stats.Score, old),
	}
}

func (bd *BookmarkDetector) checkBreakthrough(stats GenerationStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Score
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Score) >= avg*bd.breakthroughMultiplier && stats.Score >= 3 {
		return &Bookmark{
			Type:        BookmarkBreakthrough,
			Generation:  stats.Generation,
			Tick:        stats.EndTick,
			Description: fmt.Sprintf("Score %d is %.1fx rolling average (%.2f)", stats.Score, float64(stats.Score)/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkStagnation(stats GenerationStats) *Bookmark {
	if bd.stagnationLimit <= 0 || bd.stagnationFired || bd.sinceRecord < bd.stagnationLimit {
		return nil
	}
	bd.stagnationFired = true

	return &Bookmark{
		Type:        BookmarkStagnation,
		Generation:  stats.Generation,
		Tick:        stats.EndTick,
		Description: fmt.Sprintf("No new record for %d generations (record %d)", bd.sinceRecord, bd.recordScore),
	}
}
