package life

import (
	"fmt"
	"strconv"

	"mad-life/pkg/core"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Size    int
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: 100}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	n       int
	workers int
	gen     int
	cur     *Grid
	nxt     *Grid
	pixels  []uint8
}

// New returns a Life simulation on an n×n board.
func New(n int) *Life {
	return NewWithConfig(Config{Size: n})
}

// NewWithConfig returns a Life simulation using cfg.
func NewWithConfig(cfg Config) *Life {
	n := cfg.Size
	if n < 0 {
		n = 0
	}
	return &Life{
		n:       n,
		workers: cfg.Workers,
		cur:     newGrid(n),
		nxt:     newGrid(n),
		pixels:  make([]uint8, n*n),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.n, H: l.n} }

// Cells exposes the current generation in the 255/0 intensity encoding.
func (l *Life) Cells() []uint8 {
	l.cur.fillIntensities(l.pixels)
	return l.pixels
}

// Grid returns a snapshot of the current generation.
func (l *Life) Grid() *Grid { return l.cur.Clone() }

// Generation returns the number of steps since the last reset or load.
func (l *Life) Generation() int { return l.gen }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	sample(l.cur.cells, core.NewRNG(seed))
	l.gen = 0
}

// Load replaces the current generation with a copy of g.
func (l *Life) Load(g *Grid) error {
	if err := checkSize(g, l.n); err != nil {
		return err
	}
	copy(l.cur.cells, g.cells)
	l.gen = 0
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	stepInto(l.cur.cells, l.nxt.cells, l.n, l.workers)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

func (l *Life) String() string {
	return fmt.Sprintf("life %dx%d gen=%d", l.n, l.n, l.gen)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
