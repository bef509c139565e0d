package life

import (
	"fmt"
	"math/rand/v2"
)

// AliveProbability is the chance that a freshly initialized cell is alive.
const AliveProbability = 0.2

// Source supplies uniform values in [0, 1). *rand.Rand and *core.RNG both
// satisfy it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Initialize samples an n×n grid where each cell is independently alive with
// probability AliveProbability. A nil src uses the process-wide generator.
func Initialize(n int, src Source) (*Grid, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if src == nil {
		src = globalSource{}
	}
	g := newGrid(n)
	sample(g.cells, src)
	return g, nil
}

// sample overwrites cells in row-major order with independent draws.
func sample(cells []CellState, src Source) {
	for i := range cells {
		cells[i] = Dead
		if src.Float64() < AliveProbability {
			cells[i] = Alive
		}
	}
}
