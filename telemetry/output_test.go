package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/flappy/config"
)

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// Every method must be safe on nil.
	if err := om.WriteGeneration(GenerationStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteBookmark(Bookmark{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0, 0); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager should report an empty dir")
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteGeneration(GenerationStats{Generation: i, Score: i * 2}); err != nil {
			t.Fatalf("WriteGeneration failed: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkRecordScore, Generation: 3, Description: "x"}); err != nil {
		t.Fatalf("WriteBookmark failed: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("generations.csv has %d lines, want header + 3 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "generation,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "generation,") != 1 {
		t.Error("header written more than once")
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}
	bookmarks, err := os.ReadFile(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bookmarks), "record_score") {
		t.Error("bookmark row missing")
	}
}
