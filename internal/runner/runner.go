// Package runner drives a Life simulation: it initializes a grid once, steps
// it once per interval and hands every generation to a set of sinks.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"mad-life/pkg/sims/life"
)

// FrameSink consumes one grid per generation. Grids handed to a sink are
// never modified afterwards, so sinks may keep them.
type FrameSink interface {
	Frame(gen int, g *life.Grid) error
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(gen int, g *life.Grid) error

// Frame calls f.
func (f FrameSinkFunc) Frame(gen int, g *life.Grid) error { return f(gen, g) }

// Options configure a Runner.
type Options struct {
	Size        int
	Interval    time.Duration
	Generations int
	Workers     int
	Source      life.Source
	Logger      *slog.Logger
	// ProgressEvery logs a progress line every this many generations
	// (0 = never).
	ProgressEvery int
}

// Runner owns the simulation loop.
type Runner struct {
	opts  Options
	sinks []FrameSink
	log   *slog.Logger
	grid  *life.Grid
	gen   int
}

// New returns a Runner feeding the given sinks.
func New(opts Options, sinks ...FrameSink) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{opts: opts, sinks: sinks, log: logger}
}

// Generation returns the last generation handed to the sinks.
func (r *Runner) Generation() int { return r.gen }

// Grid returns the last generation's grid.
func (r *Runner) Grid() *life.Grid { return r.grid }

// Run initializes the grid and steps it until Generations steps have run, ctx
// is done, or a sink fails. Sinks implementing io.Closer are closed on return.
func (r *Runner) Run(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, r.closeSinks())
	}()

	g, err := life.Initialize(r.opts.Size, r.opts.Source)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	r.log.Info("simulation starting",
		"size", r.opts.Size,
		"interval", r.opts.Interval,
		"generations", r.opts.Generations,
		"alive", g.Population(),
	)
	if err := r.emit(0, g); err != nil {
		return err
	}

	var tick <-chan time.Time
	if r.opts.Interval > 0 {
		ticker := time.NewTicker(r.opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for gen := 1; r.opts.Generations == 0 || gen <= r.opts.Generations; gen++ {
		if ctx.Err() != nil {
			return r.stopped(ctx)
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.stopped(ctx)
			case <-tick:
			}
		}

		g, err = life.StepParallel(g, r.opts.Size, r.opts.Workers)
		if err != nil {
			return fmt.Errorf("generation %d: %w", gen, err)
		}
		if err := r.emit(gen, g); err != nil {
			return err
		}
		if every := r.opts.ProgressEvery; every > 0 && gen%every == 0 {
			r.log.Info("progress", "generation", gen, "alive", g.Population())
		}
	}

	r.log.Info("simulation finished", "generation", r.gen, "alive", r.grid.Population())
	return nil
}

func (r *Runner) emit(gen int, g *life.Grid) error {
	r.grid, r.gen = g, gen
	for _, s := range r.sinks {
		if err := s.Frame(gen, g); err != nil {
			return fmt.Errorf("generation %d: sink: %w", gen, err)
		}
	}
	return nil
}

func (r *Runner) stopped(ctx context.Context) error {
	r.log.Info("simulation stopped", "generation", r.gen, "reason", context.Cause(ctx))
	return ctx.Err()
}

func (r *Runner) closeSinks() error {
	var errs []error
	for _, s := range r.sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
