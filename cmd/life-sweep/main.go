package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"mad-life/pkg/sims/life"
)

type scenarioResult struct {
	seed      int64
	initial   int
	final     int
	peak      int
	settledAt int
	period    int
}

func (r scenarioResult) String() string {
	settled := "no"
	if r.period > 0 {
		settled = fmt.Sprintf("step %d (period %d)", r.settledAt, r.period)
	}
	return fmt.Sprintf("seed=%d initial=%d final=%d peak=%d settled=%s",
		r.seed, r.initial, r.final, r.peak, settled)
}

func main() {
	size := flag.Int("grid-size", 64, "grid dimension N")
	steps := flag.Int("steps", 500, "generations to simulate per seed")
	seeds := flag.Int("seeds", 64, "number of seeds to sweep")
	first := flag.Int64("first-seed", 1, "first seed of the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	fmt.Printf("Sweeping %d seeds on %dx%d (%d workers, %d steps)\n", *seeds, *size, *size, *workers, *steps)

	jobs := make(chan int64)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runScenario(*size, seed, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	if len(all) == 0 {
		return
	}

	sort.Slice(all, func(i, j int) bool { return all[i].final > all[j].final })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 survivors (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}

	cells := float64(*size * *size)
	finals := make([]float64, len(all))
	settled := 0
	for i, res := range all {
		finals[i] = float64(res.final) / cells
		if res.period > 0 {
			settled++
		}
	}
	mean, std := stat.MeanStdDev(finals, nil)
	fmt.Printf("\nFinal density mean=%.4f std=%.4f settled=%d/%d\n", mean, std, settled, len(all))
}

// runScenario steps one seeded board and reports when it fell into a still
// life or period-2 oscillation.
func runScenario(size int, seed int64, steps int) scenarioResult {
	sim := life.NewWithConfig(life.Config{Size: size, Workers: 1})
	sim.Reset(seed)
	res := track(sim, steps)
	res.seed = seed
	return res
}

func track(sim *life.Life, steps int) scenarioResult {
	res := scenarioResult{initial: sim.Population(), peak: sim.Population()}
	history := []*life.Grid{sim.Grid()}
	for step := 1; step <= steps; step++ {
		sim.Step()
		g := sim.Grid()
		res.peak = max(res.peak, g.Population())
		for back := 1; back <= 2 && back <= len(history); back++ {
			if g.Equal(history[len(history)-back]) {
				res.settledAt = step - back
				res.period = back
				break
			}
		}
		if res.period > 0 {
			break
		}
		history = append(history, g)
		if len(history) > 2 {
			history = history[1:]
		}
	}
	res.final = sim.Population()
	return res
}
