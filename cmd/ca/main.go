//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"mad-life/internal/app"
	"mad-life/internal/config"
	"mad-life/internal/runner"
	"mad-life/internal/stats"
	"mad-life/pkg/core"
	_ "mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(); err != nil {
		slog.Error("ca failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.CommandLine
	sim := fs.String("sim", "life", "simulation to run")
	pixelScale := fs.Int("cell-pixels", 6, "window pixels per cell")
	res, err := config.Parse(fs, os.Args[1:], nil)
	if err != nil {
		return err
	}
	cfg := res.Config

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	if res.Substituted {
		logger.Warn("grid size too small, using default",
			"requested", res.RequestedSize,
			"min", config.MinGridSize,
			"size", cfg.GridSize,
		)
	}

	factory, ok := core.Sims()[*sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", *sim)
	}

	seed := cfg.ResolveSeed()
	artifacts, err := runner.NewArtifacts(cfg)
	if err != nil {
		return err
	}

	s := factory(map[string]string{
		"n":       strconv.Itoa(cfg.GridSize),
		"workers": strconv.Itoa(cfg.Workers),
	})
	s.Reset(seed)

	session, err := app.NewSession(s, cfg.Generations, logger, artifacts)
	if err != nil {
		return err
	}
	defer session.Close()
	if err := session.Capture(); err != nil {
		return err
	}

	game := app.New(s, *pixelScale, seed, cfg.Interval(), session)
	size := s.Size()

	ebiten.SetWindowTitle("mad-life: " + s.Name())
	ebiten.SetWindowSize(size.W**pixelScale, size.H**pixelScale)

	logger.Info("starting", "sim", s.Name(), "seed", seed, "config", res.Path, "mov_file", cfg.MovieFile, "output_dir", artifacts.OutputDir())
	runErr := ebiten.RunGame(game)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	if err := session.Close(); err != nil {
		runErr = errors.Join(runErr, err)
	}

	sum := stats.Summarize(artifacts.Tracker.Records())
	logger.Info("summary",
		"generations", sum.Generations,
		"final_alive", sum.FinalAlive,
		"mean_fraction", fmt.Sprintf("%.4f", sum.MeanFraction),
	)
	return runErr
}
