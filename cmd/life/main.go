package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mad-life/internal/config"
	"mad-life/internal/runner"
	"mad-life/internal/stats"
	"mad-life/pkg/core"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		slog.Error("life failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(logOut)
	res, err := config.Parse(fs, args, nil)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg := res.Config

	logger := cfg.NewLogger(logOut)
	slog.SetDefault(logger)
	if res.Substituted {
		logger.Warn("grid size too small, using default",
			"requested", res.RequestedSize,
			"min", config.MinGridSize,
			"size", cfg.GridSize,
		)
	}

	seed := cfg.ResolveSeed()
	artifacts, err := runner.NewArtifacts(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(runner.Options{
		Size:          cfg.GridSize,
		Interval:      cfg.Interval(),
		Generations:   cfg.Generations,
		Workers:       cfg.Workers,
		Source:        core.NewRNG(seed),
		Logger:        logger,
		ProgressEvery: 100,
	}, artifacts)

	logger.Info("starting", "seed", seed, "config", res.Path, "mov_file", cfg.MovieFile, "output_dir", artifacts.OutputDir())
	runErr := r.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	s := stats.Summarize(artifacts.Tracker.Records())
	logger.Info("summary",
		"generations", s.Generations,
		"final_alive", s.FinalAlive,
		"min_alive", s.MinAlive,
		"max_alive", s.MaxAlive,
		"mean_fraction", fmt.Sprintf("%.4f", s.MeanFraction),
		"std_fraction", fmt.Sprintf("%.4f", s.StdFraction),
	)
	return runErr
}
