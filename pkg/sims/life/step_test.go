package life

import (
	"errors"
	"testing"

	"mad-life/pkg/core"
)

func mustGrid(t *testing.T, n int, live ...Pos) *Grid {
	t.Helper()
	g, err := NewGrid(n, live...)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", n, err)
	}
	return g
}

func mustStep(t *testing.T, g *Grid) *Grid {
	t.Helper()
	next, err := Step(g, g.Size())
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return next
}

func TestNextRule(t *testing.T) {
	for count := 0; count <= 8; count++ {
		wantAlive := count == 2 || count == 3
		if got := Next(Alive, count); (got == Alive) != wantAlive {
			t.Errorf("Next(Alive, %d) = %v", count, got)
		}
		wantBorn := count == 3
		if got := Next(Dead, count); (got == Alive) != wantBorn {
			t.Errorf("Next(Dead, %d) = %v", count, got)
		}
	}
}

func TestStepBlinker(t *testing.T) {
	horizontal := mustGrid(t, 10, Pos{4, 3}, Pos{4, 4}, Pos{4, 5})
	vertical := mustGrid(t, 10, Pos{3, 4}, Pos{4, 4}, Pos{5, 4})

	g := mustStep(t, horizontal)
	if !g.Equal(vertical) {
		t.Fatalf("first step got\n%s\nwant\n%s", g, vertical)
	}
	g = mustStep(t, g)
	if !g.Equal(horizontal) {
		t.Fatalf("second step got\n%s\nwant\n%s", g, horizontal)
	}
}

func TestStepBlockStillLife(t *testing.T) {
	block := mustGrid(t, 10, Pos{4, 4}, Pos{4, 5}, Pos{5, 4}, Pos{5, 5})
	g := mustStep(t, block)
	if !g.Equal(block) {
		t.Fatalf("block changed:\n%s", g)
	}

	// Dead cells bordering the block see at most two live neighbors.
	for row := 3; row <= 6; row++ {
		for col := 3; col <= 6; col++ {
			if block.At(row, col) == Alive {
				continue
			}
			if got := liveNeighbors(block, row, col); got > 2 {
				t.Errorf("dead cell (%d,%d) has %d live neighbors", row, col, got)
			}
		}
	}
}

func TestStepCornersWrap(t *testing.T) {
	for _, n := range []int{3, 9, 12} {
		corners := mustGrid(t, n, Pos{0, 0}, Pos{0, n - 1}, Pos{n - 1, 0}, Pos{n - 1, n - 1})
		if got := liveNeighbors(corners, 0, 0); got != 3 {
			t.Fatalf("n=%d: corner (0,0) has %d live neighbors, want 3", n, got)
		}
		g := mustStep(t, corners)
		if !g.Equal(corners) {
			t.Fatalf("n=%d: corners changed:\n%s", n, g)
		}
	}
}

func TestStepEdgeWrap(t *testing.T) {
	// A blinker straddling the left/right edge.
	g := mustGrid(t, 9, Pos{4, 8}, Pos{4, 0}, Pos{4, 1})
	want := mustGrid(t, 9, Pos{3, 0}, Pos{4, 0}, Pos{5, 0})
	if got := mustStep(t, g); !got.Equal(want) {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestStepGlider(t *testing.T) {
	n := 12
	glider := mustGrid(t, n, Pos{0, 1}, Pos{1, 2}, Pos{2, 0}, Pos{2, 1}, Pos{2, 2})
	g := glider
	// A glider moves one cell down and right every four generations, so after
	// 4n generations it is back where it started.
	for i := 0; i < 4*n; i++ {
		g = mustStep(t, g)
		if g.Population() != 5 {
			t.Fatalf("generation %d: population %d", i+1, g.Population())
		}
	}
	if !g.Equal(glider) {
		t.Fatalf("glider did not return home:\n%s", g)
	}
}

func TestStepPurityAndDeterminism(t *testing.T) {
	g, err := Initialize(40, core.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	saved := g.Clone()

	a := mustStep(t, g)
	b := mustStep(t, g)
	if !g.Equal(saved) {
		t.Fatal("Step modified its input")
	}
	if !a.Equal(b) {
		t.Fatal("Step is not deterministic")
	}
	if a.Size() != g.Size() {
		t.Fatalf("size changed from %d to %d", g.Size(), a.Size())
	}
}

func TestStepSizeMismatch(t *testing.T) {
	g := mustGrid(t, 10)
	if _, err := Step(g, 11); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Step err = %v, want ErrSizeMismatch", err)
	}
	if _, err := StepParallel(g, 9, 2); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("StepParallel err = %v, want ErrSizeMismatch", err)
	}
	if _, err := Step(nil, 0); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Step(nil) err = %v, want ErrSizeMismatch", err)
	}
}

func TestStepParallelMatchesSequential(t *testing.T) {
	for _, n := range []int{9, 33, 100, 257} {
		g, err := Initialize(n, core.NewRNG(int64(n)))
		if err != nil {
			t.Fatal(err)
		}
		want := g
		for i := 0; i < 5; i++ {
			want = mustStep(t, want)
		}
		for _, workers := range []int{0, 1, 2, 3, 7, n + 5} {
			got := g
			for i := 0; i < 5; i++ {
				got, err = StepParallel(got, n, workers)
				if err != nil {
					t.Fatal(err)
				}
			}
			if !got.Equal(want) {
				t.Fatalf("n=%d workers=%d differs from sequential", n, workers)
			}
		}
	}
}

func TestStepDegenerate(t *testing.T) {
	empty := mustGrid(t, 0)
	g, err := Step(empty, 0)
	if err != nil || g.Size() != 0 {
		t.Fatalf("Step(0x0) = %v, %v", g, err)
	}

	// On a 1x1 torus the single cell is all eight of its own neighbors.
	one := mustGrid(t, 1, Pos{0, 0})
	if got := mustStep(t, one).At(0, 0); got != Dead {
		t.Fatalf("1x1 live cell should die of overcrowding, got %v", got)
	}
}

func liveNeighbors(g *Grid, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.At(row+dr, col+dc) == Alive {
				count++
			}
		}
	}
	return count
}
