package runner

import (
	"context"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mad-life/internal/config"
	"mad-life/pkg/core"
)

func TestArtifactsWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.GridSize = 12
	cfg.Seed = 21
	cfg.SaveCount = 3
	cfg.MovieFile = filepath.Join(dir, "run.gif")
	cfg.OutputDir = filepath.Join(dir, "out")

	a, err := NewArtifacts(cfg)
	if err != nil {
		t.Fatal(err)
	}
	r := New(Options{Size: 12, Generations: 4, Source: core.NewRNG(cfg.Seed), Logger: quiet}, a)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if n := len(a.Tracker.Records()); n != 5 {
		t.Fatalf("census has %d rows, want 5", n)
	}
	f, err := os.Open(cfg.MovieFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("recorded %d frames, want the save count of 3", len(anim.Image))
	}

	snapshot, err := os.ReadFile(filepath.Join(cfg.OutputDir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(snapshot), "seed: 21") {
		t.Fatalf("config snapshot lacks the seed:\n%s", snapshot)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "population.csv")); err != nil {
		t.Fatal(err)
	}
}

func TestArtifactsDisabled(t *testing.T) {
	a, err := NewArtifacts(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if a.Movie != nil || a.OutputDir() != "" {
		t.Fatal("no outputs were requested")
	}
	r := New(Options{Size: 10, Generations: 2, Source: core.NewRNG(1), Logger: quiet}, a)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := len(a.Tracker.Records()); n != 3 {
		t.Fatalf("census has %d rows, want 3", n)
	}
}
