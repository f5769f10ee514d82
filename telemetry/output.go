package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/flappy/config"
)

// OutputManager handles structured experiment output with CSV logging.
// A nil manager is valid and discards everything.
type OutputManager struct {
	dir         string
	generations *csvFile
	perf        *csvFile
	bookmarks   *csvFile
}

// csvFile is an append-only CSV file that writes its header once.
type csvFile struct {
	name          string
	f             *os.File
	headerWritten bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{name: name, f: f}, nil
}

// append writes records, a slice of csv-tagged structs.
func (c *csvFile) append(records any) error {
	var err error
	if !c.headerWritten {
		// First write includes headers
		err = gocsv.Marshal(records, c.f)
		c.headerWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(records, c.f)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", c.name, err)
	}
	return nil
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.generations, err = createCSV(dir, "generations.csv"); err != nil {
		return nil, err
	}
	if om.perf, err = createCSV(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.bookmarks, err = createCSV(dir, "bookmarks.csv"); err != nil {
		om.Close()
		return nil, err
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGeneration appends a row to generations.csv.
func (om *OutputManager) WriteGeneration(stats GenerationStats) error {
	if om == nil {
		return nil
	}
	return om.generations.append([]GenerationStats{stats})
}

// WritePerf appends a row to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, tick int32, generation int) error {
	if om == nil {
		return nil
	}
	return om.perf.append([]PerfStatsCSV{stats.ToCSV(tick, generation)})
}

// WriteBookmark appends a row to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	return om.bookmarks.append([]Bookmark{b})
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{om.generations, om.perf, om.bookmarks} {
		if c == nil {
			continue
		}
		if err := c.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
