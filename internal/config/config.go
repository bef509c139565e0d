// Package config loads driver settings from defaults, an optional YAML file,
// LIFE_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultGridSize replaces grid sizes that are too small to be useful.
	DefaultGridSize = 100
	// MinGridSize is the smallest accepted grid size.
	MinGridSize = 9
	// EnvPrefix namespaces the environment variables read by LoadEnv.
	EnvPrefix = "LIFE_"
)

// Config holds the settings for a simulation run.
type Config struct {
	GridSize    int    `yaml:"grid_size" env:"GRID_SIZE"`
	IntervalMS  int    `yaml:"interval" env:"INTERVAL"`
	MovieFile   string `yaml:"mov_file" env:"MOV_FILE"`
	Generations int    `yaml:"generations" env:"GENERATIONS"`
	SaveCount   int    `yaml:"save_count" env:"SAVE_COUNT"`
	FPS         int    `yaml:"fps" env:"FPS"`
	Scale       int    `yaml:"scale" env:"SCALE"`
	Seed        int64  `yaml:"seed" env:"SEED"`
	Workers     int    `yaml:"workers" env:"WORKERS"`
	OutputDir   string `yaml:"output_dir" env:"OUTPUT_DIR"`
	LogFormat   string `yaml:"log_format" env:"LOG_FORMAT"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:   DefaultGridSize,
		IntervalMS: 50,
		SaveCount:  50,
		FPS:        30,
		Scale:      4,
		LogFormat:  "text",
	}
}

// ResolveSeed replaces a zero seed with a time-based one and returns the
// seed in effect. Later calls return the same value.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// NewLogger returns a slog logger writing to w in the configured format.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// Interval returns the per-generation update interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "grid-size", c.GridSize, "grid dimension N (values below 9 fall back to 100)")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "update interval in milliseconds (0 = as fast as possible)")
	fs.StringVar(&c.MovieFile, "mov-file", c.MovieFile, "record frames to this GIF file")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run (0 = until interrupted)")
	fs.IntVar(&c.SaveCount, "save-count", c.SaveCount, "maximum number of recorded frames")
	fs.IntVar(&c.FPS, "fps", c.FPS, "playback frame rate of the recording")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the recording")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 = time-based)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "step workers (0 = GOMAXPROCS)")
	fs.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "directory for config snapshot and population CSV")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// LoadFile overlays values from a YAML file. Keys missing from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// LoadEnv overlays LIFE_* variables. A nil environ reads the process
// environment.
func (c *Config) LoadEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// WriteYAML saves the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Normalize substitutes the default grid size for sizes below MinGridSize.
// It reports whether a substitution happened.
func (c *Config) Normalize() bool {
	if c.GridSize < MinGridSize {
		c.GridSize = DefaultGridSize
		return true
	}
	return false
}

// Validate checks the remaining fields for values no run can use.
func (c Config) Validate() error {
	var errs []error
	if c.IntervalMS < 0 {
		errs = append(errs, fmt.Errorf("interval must be >= 0, got %d", c.IntervalMS))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must be >= 0, got %d", c.Generations))
	}
	if c.SaveCount < 0 {
		errs = append(errs, fmt.Errorf("save-count must be >= 0, got %d", c.SaveCount))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be > 0, got %d", c.FPS))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be > 0, got %d", c.Scale))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log-format must be text or json, got %q", c.LogFormat))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
