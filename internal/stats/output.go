package stats

import (
	"fmt"
	"os"
	"path/filepath"

	"mad-life/internal/config"
)

// OutputManager writes run artifacts into a directory.
type OutputManager struct {
	dir string
}

// NewOutputManager creates dir if needed. It returns nil when dir is empty
// (output disabled); the methods are no-ops on a nil manager.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePopulation saves the tracker's records as population.csv.
func (om *OutputManager) WritePopulation(t *Tracker) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(om.dir, "population.csv"))
	if err != nil {
		return fmt.Errorf("creating population.csv: %w", err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
