package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"mad-life/pkg/sims/life"
)

// Population is one generation's census.
type Population struct {
	Generation int     `csv:"generation"`
	Alive      int     `csv:"alive"`
	Fraction   float64 `csv:"alive_fraction"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
}

// Tracker records a Population row for every frame it receives.
type Tracker struct {
	prev    *life.Grid
	records []Population
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker { return &Tracker{} }

// Frame records the census of g. Births and deaths are counted against the
// previous frame; the first frame has none.
func (t *Tracker) Frame(gen int, g *life.Grid) error {
	if t.prev != nil && t.prev.Size() != g.Size() {
		return fmt.Errorf("stats: frame %d is %dx%d, previous was %dx%d",
			gen, g.Size(), g.Size(), t.prev.Size(), t.prev.Size())
	}
	rec := Population{Generation: gen, Alive: g.Population()}
	if cells := g.Size() * g.Size(); cells > 0 {
		rec.Fraction = float64(rec.Alive) / float64(cells)
	}
	if t.prev != nil {
		rec.Births, rec.Deaths = diff(t.prev, g)
	}
	t.prev = g
	t.records = append(t.records, rec)
	return nil
}

func diff(prev, cur *life.Grid) (births, deaths int) {
	n := cur.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			was, is := prev.At(row, col), cur.At(row, col)
			switch {
			case was == life.Dead && is == life.Alive:
				births++
			case was == life.Alive && is == life.Dead:
				deaths++
			}
		}
	}
	return births, deaths
}

// Records returns the rows recorded so far.
func (t *Tracker) Records() []Population { return t.records }

// WriteCSV writes all records with a header row.
func (t *Tracker) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(t.records, w); err != nil {
		return fmt.Errorf("stats: write csv: %w", err)
	}
	return nil
}

// Summary aggregates a run.
type Summary struct {
	Generations  int
	MeanFraction float64
	StdFraction  float64
	MinAlive     int
	MaxAlive     int
	FinalAlive   int
}

// Summarize computes aggregate statistics over records. An empty slice yields
// a zero Summary.
func Summarize(records []Population) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	fractions := make([]float64, len(records))
	s := Summary{
		Generations: records[len(records)-1].Generation,
		MinAlive:    math.MaxInt,
		FinalAlive:  records[len(records)-1].Alive,
	}
	for i, r := range records {
		fractions[i] = r.Fraction
		s.MinAlive = min(s.MinAlive, r.Alive)
		s.MaxAlive = max(s.MaxAlive, r.Alive)
	}
	s.MeanFraction = stat.Mean(fractions, nil)
	if len(fractions) > 1 {
		s.StdFraction = stat.StdDev(fractions, nil)
	}
	return s
}
