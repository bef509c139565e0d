package life

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the smallest dimension worth splitting across workers.
const parallelThreshold = 32

// Step computes the next generation of g. n must equal g.Size(). The input
// grid is left untouched.
func Step(g *Grid, n int) (*Grid, error) {
	if err := checkSize(g, n); err != nil {
		return nil, err
	}
	next := g.Clone()
	stepRows(g.cells, next.cells, n, 0, n)
	return next, nil
}

// StepParallel is Step with rows split into bands computed concurrently.
// The result is identical to Step. workers <= 0 uses GOMAXPROCS.
func StepParallel(g *Grid, n, workers int) (*Grid, error) {
	if err := checkSize(g, n); err != nil {
		return nil, err
	}
	next := g.Clone()
	stepInto(g.cells, next.cells, n, workers)
	return next, nil
}

func checkSize(g *Grid, n int) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrSizeMismatch)
	}
	if g.n != n {
		return fmt.Errorf("%w: grid is %dx%d, got n=%d", ErrSizeMismatch, g.n, g.n, n)
	}
	return nil
}

// stepInto writes the generation following cur into nxt. cur is only read.
func stepInto(cur, nxt []CellState, n, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 || n < parallelThreshold {
		stepRows(cur, nxt, n, 0, n)
		return
	}

	var eg errgroup.Group
	rowsPerWorker := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= end {
			break
		}
		eg.Go(func() error {
			stepRows(cur, nxt, n, start, end)
			return nil
		})
	}
	_ = eg.Wait()
}

// stepRows updates rows [r0, r1) of nxt from cur.
func stepRows(cur, nxt []CellState, n, r0, r1 int) {
	for i := r0; i < r1; i++ {
		up := wrap(i-1, n) * n
		row := i * n
		down := wrap(i+1, n) * n
		for j := 0; j < n; j++ {
			left := wrap(j-1, n)
			right := wrap(j+1, n)
			// Alive == 1 and Dead == 0, so the sum is the live count.
			count := int(cur[row+left]) + int(cur[row+right]) +
				int(cur[up+j]) + int(cur[down+j]) +
				int(cur[up+left]) + int(cur[up+right]) +
				int(cur[down+left]) + int(cur[down+right])
			nxt[row+j] = Next(cur[row+j], count)
		}
	}
}
