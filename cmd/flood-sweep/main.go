// Command flood-sweep runs one single-source flood per sampled start cell of a
// terrain and ranks the starts by how much ground their water reaches.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"flood-ca/internal/core"
	"flood-ca/internal/demio"
	"flood-ca/internal/flow"
	"flood-ca/internal/terrain"
)

type start struct{ row, col int }

type runResult struct {
	start     start
	elevation int
	snapshots int
	wet       int
	err       error
}

func main() {
	dem := flag.String("dem", "", "elevation grid file; generated when empty")
	stride := flag.Int("stride", 4, "sample every n-th row and column as a start cell")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of ranked starts to print")
	tc := terrain.DefaultConfig()
	flag.IntVar(&tc.Width, "w", tc.Width, "generated terrain width")
	flag.IntVar(&tc.Height, "h", tc.Height, "generated terrain height")
	flag.Int64Var(&tc.Seed, "seed", tc.Seed, "generated terrain seed")
	flag.Parse()

	var (
		elev *core.IntGrid
		err  error
	)
	if *dem != "" {
		elev, err = demio.Load(osfs.New("."), *dem)
	} else {
		elev, err = terrain.Generate(tc)
	}
	if err != nil {
		log.Fatal(err)
	}

	starts := sampleStarts(elev.Size(), *stride)
	fmt.Printf("Sweeping %d start cells on %dx%d terrain (%d workers)\n", len(starts), elev.W, elev.H, *workers)

	begin := time.Now()
	results := sweep(elev, starts, *workers)
	report(os.Stdout, results, *top, time.Since(begin))
}

func sampleStarts(s core.Size, stride int) []start {
	if stride < 1 {
		stride = 1
	}
	var out []start
	for r := 0; r < s.H; r += stride {
		for c := 0; c < s.W; c += stride {
			out = append(out, start{row: r, col: c})
		}
	}
	return out
}

// sweep floods from every start and returns results ranked by wet area, ties
// broken by position.
func sweep(elev *core.IntGrid, starts []start, workers int) []runResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan start)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runStart(elev, s)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range starts {
			jobs <- s
		}
		close(jobs)
	}()

	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.wet != b.wet {
			return a.wet > b.wet
		}
		if a.start.row != b.start.row {
			return a.start.row < b.start.row
		}
		return a.start.col < b.start.col
	})
	return all
}

func runStart(elev *core.IntGrid, s start) runResult {
	res := runResult{start: s}
	sim, err := flow.New(elev, s.row, s.col)
	if err != nil {
		res.err = err
		return res
	}
	res.elevation = elev.At(s.row, s.col)
	res.snapshots = len(sim.Run())
	res.wet = sim.Current().NonZero()
	return res
}

func report(w io.Writer, results []runResult, top int, elapsed time.Duration) {
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	fmt.Fprintf(w, "\nTop %d starts (elapsed %s):\n", top, elapsed.Round(time.Millisecond))
	shown := 0
	for _, res := range results {
		if shown == top {
			break
		}
		if res.err != nil {
			continue
		}
		shown++
		fmt.Fprintf(w, "%2d) start=(%d,%d) elev=%d wet=%d snapshots=%d\n",
			shown, res.start.row, res.start.col, res.elevation, res.wet, res.snapshots)
	}
	if failed > 0 {
		fmt.Fprintf(w, "\n%d starts failed\n", failed)
	}
}
