package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_RecordScore(t *testing.T) {
	bd := NewBookmarkDetector(10, 2.0, 0)

	if !hasBookmark(bd.Check(GenerationStats{Generation: 1, Score: 2}), BookmarkRecordScore) {
		t.Error("first non-zero score should be a record")
	}
	if hasBookmark(bd.Check(GenerationStats{Generation: 2, Score: 2}), BookmarkRecordScore) {
		t.Error("equal score should not be a record")
	}
	if !hasBookmark(bd.Check(GenerationStats{Generation: 3, Score: 5}), BookmarkRecordScore) {
		t.Error("higher score should be a record")
	}
}

func TestBookmarkDetector_Breakthrough(t *testing.T) {
	bd := NewBookmarkDetector(10, 2.0, 0)

	for i := 1; i <= 5; i++ {
		bd.Check(GenerationStats{Generation: i, Score: 2})
	}

	bookmarks := bd.Check(GenerationStats{Generation: 6, Score: 6})
	if !hasBookmark(bookmarks, BookmarkBreakthrough) {
		t.Error("expected breakthrough bookmark for 3x the rolling average")
	}

	bookmarks = bd.Check(GenerationStats{Generation: 7, Score: 3})
	if hasBookmark(bookmarks, BookmarkBreakthrough) {
		t.Error("unexpected breakthrough for an ordinary score")
	}
}

func TestBookmarkDetector_BreakthroughNeedsHistory(t *testing.T) {
	bd := NewBookmarkDetector(10, 2.0, 0)
	bd.Check(GenerationStats{Generation: 1, Score: 1})

	if hasBookmark(bd.Check(GenerationStats{Generation: 2, Score: 10}), BookmarkBreakthrough) {
		t.Error("breakthrough should need at least three generations of history")
	}
}

func TestBookmarkDetector_Stagnation(t *testing.T) {
	bd := NewBookmarkDetector(10, 2.0, 3)
	bd.Check(GenerationStats{Generation: 1, Score: 4})

	var fired int
	for i := 2; i <= 10; i++ {
		if hasBookmark(bd.Check(GenerationStats{Generation: i, Score: 1}), BookmarkStagnation) {
			fired++
			if i != 4 {
				t.Errorf("stagnation fired at generation %d, want 4", i)
			}
		}
	}
	if fired != 1 {
		t.Errorf("stagnation fired %d times, want once per plateau", fired)
	}

	// A new record starts a new plateau.
	bd.Check(GenerationStats{Generation: 11, Score: 9})
	fired = 0
	for i := 12; i <= 15; i++ {
		if hasBookmark(bd.Check(GenerationStats{Generation: i, Score: 0}), BookmarkStagnation) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("stagnation fired %d times after a new record, want 1", fired)
	}
}
