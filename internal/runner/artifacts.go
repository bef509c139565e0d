package runner

import (
	"errors"

	"mad-life/internal/config"
	"mad-life/internal/render"
	"mad-life/internal/stats"
	"mad-life/pkg/sims/life"
)

// Artifacts is the FrameSink behind a run's optional outputs: the GIF named
// by MovieFile and the config snapshot plus population census in OutputDir.
// The census is always tracked so drivers can summarize a run.
type Artifacts struct {
	Tracker *stats.Tracker
	Movie   *render.GIFRecorder
	out     *stats.OutputManager
}

// NewArtifacts prepares the outputs requested by cfg and writes the config
// snapshot. cfg should already carry its resolved seed.
func NewArtifacts(cfg config.Config) (*Artifacts, error) {
	om, err := stats.NewOutputManager(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		return nil, err
	}
	a := &Artifacts{Tracker: stats.NewTracker(), out: om}
	if cfg.MovieFile != "" {
		a.Movie = render.NewGIFRecorder(cfg.MovieFile, cfg.SaveCount, cfg.FPS, cfg.Scale)
	}
	return a, nil
}

// OutputDir returns the output directory, or "" when disabled.
func (a *Artifacts) OutputDir() string { return a.out.Dir() }

// Frame records g in the census and, when enabled, the recording.
func (a *Artifacts) Frame(gen int, g *life.Grid) error {
	if err := a.Tracker.Frame(gen, g); err != nil {
		return err
	}
	if a.Movie != nil {
		return a.Movie.Frame(gen, g)
	}
	return nil
}

// Close writes the recording and the population census.
func (a *Artifacts) Close() error {
	var errs []error
	if a.Movie != nil {
		errs = append(errs, a.Movie.Close())
	}
	errs = append(errs, a.out.WritePopulation(a.Tracker))
	return errors.Join(errs...)
}
