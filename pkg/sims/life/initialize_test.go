package life

import (
	"errors"
	"math"
	"testing"

	"mad-life/pkg/core"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestInitializeDensity(t *testing.T) {
	n := 1000
	g, err := Initialize(n, core.NewRNG(2024))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != n {
		t.Fatalf("size = %d, want %d", g.Size(), n)
	}
	frac := float64(g.Population()) / float64(n*n)
	if math.Abs(frac-AliveProbability) > 0.02 {
		t.Fatalf("alive fraction %.4f not within 0.02 of %.1f", frac, AliveProbability)
	}
}

func TestInitializeUsesSource(t *testing.T) {
	all, _ := Initialize(5, constSource(0.1))
	if all.Population() != 25 {
		t.Fatalf("source below threshold should make every cell alive, got %d", all.Population())
	}
	none, _ := Initialize(5, constSource(0.2))
	if none.Population() != 0 {
		t.Fatalf("source at threshold should leave every cell dead, got %d", none.Population())
	}
}

func TestInitializeSeeded(t *testing.T) {
	a, _ := Initialize(50, core.NewRNG(11))
	b, _ := Initialize(50, core.NewRNG(11).Source())
	if !a.Equal(b) {
		t.Fatal("RNG and its rand.Rand source disagree")
	}
}

func TestInitializeSizes(t *testing.T) {
	if _, err := Initialize(-3, nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
	for _, n := range []int{0, 1, 9} {
		g, err := Initialize(n, nil)
		if err != nil {
			t.Fatalf("Initialize(%d): %v", n, err)
		}
		if g.Size() != n || len(g.cells) != n*n {
			t.Fatalf("Initialize(%d) produced size %d with %d cells", n, g.Size(), len(g.cells))
		}
	}
}
