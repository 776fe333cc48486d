package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sandbox/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scenario struct {
	density float64
	brush   int
}

func (s scenario) String() string {
	return fmt.Sprintf("density=%.2f brush=%d", s.density, s.brush)
}

type scenarioResult struct {
	scenario scenario
	result   sand.PourResult
	err      error
}

func main() {
	pour := flag.Int("pour", 300, "ticks spent pouring per scenario")
	settle := flag.Int("settle", 400, "ticks spent settling after pouring")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	densities := flag.String("densities", "0.05,0.1,0.25,0.5,1", "comma separated spawn densities")
	brushes := flag.String("brushes", "5,11,21", "comma separated brush sizes")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	kv := map[string]string{"w": "400", "h": "300"}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring malformed override %q", o)
			continue
		}
		kv[parts[0]] = parts[1]
	}
	base := sand.FromMap(kv)

	var sets []scenario
	for _, d := range splitFloats(*densities) {
		for _, b := range splitInts(*brushes) {
			sets = append(sets, scenario{density: d, brush: b})
		}
	}
	if len(sets) == 0 {
		log.Fatal("no scenarios to run")
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d+%d ticks, %dx%d canvas, cell %d)\n",
		len(sets), *workers, *pour, *settle, base.Width, base.Height, base.CellSize)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				cfg := base
				cfg.Density = sc.density
				cfg.BrushSize = sc.brush
				res, err := sand.Pour(cfg, *pour, *settle)
				results <- scenarioResult{scenario: sc, result: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.scenario, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].result.Particles > all[j].result.Particles })
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		r := res.result
		fmt.Printf("%2d) particles=%d height=%d spread=%d slope=%.2f %s\n",
			i+1, r.Particles, r.MaxHeight, r.Spread, r.Slope, res.scenario)
	}
}

func splitFloats(s string) []float64 {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			log.Printf("ignoring density %q: %v", part, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

func splitInts(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Printf("ignoring brush %q: %v", part, err)
			continue
		}
		out = append(out, v)
	}
	return out
}
