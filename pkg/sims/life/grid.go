package life

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned for negative grid dimensions.
	ErrInvalidSize = errors.New("life: invalid grid size")
	// ErrSizeMismatch is returned when a dimension does not match the grid.
	ErrSizeMismatch = errors.New("life: grid size mismatch")
	// ErrOutOfRange is returned for coordinates outside [0, n).
	ErrOutOfRange = errors.New("life: position out of range")
)

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// Grid is an immutable NxN board stored in row-major order.
type Grid struct {
	n     int
	cells []CellState
}

func newGrid(n int) *Grid {
	return &Grid{n: n, cells: make([]CellState, n*n)}
}

// NewGrid returns an n×n grid where only the listed positions are alive.
func NewGrid(n int, live ...Pos) (*Grid, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	g := newGrid(n)
	for _, p := range live {
		if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
			return nil, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, p.Row, p.Col, n, n)
		}
		g.cells[p.Row*n+p.Col] = Alive
	}
	return g, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.n }

// wrap maps any integer coordinate onto [0, n).
func wrap(v, n int) int {
	return (v%n + n) % n
}

// At returns the state at (row, col). Coordinates wrap toroidally so -1
// addresses the last row or column.
func (g *Grid) At(row, col int) CellState {
	n := g.n
	return g.cells[wrap(row, n)*n+wrap(col, n)]
}

// Population counts live cells.
func (g *Grid) Population() int {
	alive := 0
	for _, c := range g.cells {
		if c == Alive {
			alive++
		}
	}
	return alive
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.n)
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Intensities returns the grid in the 255/0 display encoding, row-major.
func (g *Grid) Intensities() []uint8 {
	out := make([]uint8, len(g.cells))
	g.fillIntensities(out)
	return out
}

func (g *Grid) fillIntensities(buf []uint8) {
	for i, c := range g.cells {
		buf[i] = c.Intensity()
	}
}

// String renders the grid as rows of 'O' (alive) and '.' (dead).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n * (g.n + 1))
	for row := 0; row < g.n; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, c := range g.cells[row*g.n : (row+1)*g.n] {
			if c == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
