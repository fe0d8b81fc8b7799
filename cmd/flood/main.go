// Command flood runs a single-source surface water simulation headlessly and
// prints the converged wet map.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"flood-ca/internal/core"
	"flood-ca/internal/demio"
	"flood-ca/internal/flow"
	"flood-ca/internal/terrain"
)

type config struct {
	DEM     string
	Out     string
	Row     int
	Col     int
	Workers int
	All     bool
	FlowMap bool
	Quiet   bool

	Terrain terrain.Config
}

func newConfig() *config {
	return &config{Row: -1, Col: -1, Workers: 1, Terrain: terrain.DefaultConfig()}
}

func (c *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.DEM, "dem", c.DEM, "elevation grid file (whitespace separated integers); generated when empty")
	fs.StringVar(&c.Out, "out", c.Out, "write the final wet map to this file")
	fs.IntVar(&c.Row, "row", c.Row, "start row (negative picks the highest cell)")
	fs.IntVar(&c.Col, "col", c.Col, "start column (negative picks the highest cell)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per convolution")
	fs.BoolVar(&c.All, "all", c.All, "print every snapshot, not just the final one")
	fs.BoolVar(&c.FlowMap, "flowmap", c.FlowMap, "print the downhill direction masks")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress progress logging")
	fs.IntVar(&c.Terrain.Width, "w", c.Terrain.Width, "generated terrain width")
	fs.IntVar(&c.Terrain.Height, "h", c.Terrain.Height, "generated terrain height")
	fs.Int64Var(&c.Terrain.Seed, "seed", c.Terrain.Seed, "generated terrain seed")
	fs.IntVar(&c.Terrain.Octaves, "octaves", c.Terrain.Octaves, "generated terrain noise octaves")
	fs.Float64Var(&c.Terrain.Scale, "scale", c.Terrain.Scale, "generated terrain feature size in cells")
	fs.Float64Var(&c.Terrain.Amplitude, "amplitude", c.Terrain.Amplitude, "generated terrain elevation range")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("flood: ")

	cfg := newConfig()
	cfg.bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, osfs.New("."), os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config, fs billy.Filesystem, stdout io.Writer, logger *log.Logger) error {
	if cfg.Quiet {
		logger = log.New(io.Discard, "", 0)
	}

	elev, err := loadElevation(cfg, fs)
	if err != nil {
		return err
	}
	logger.Printf("elevation %dx%d, range %d..%d", elev.W, elev.H, elev.Min(), elev.Max())

	row, col := cfg.Row, cfg.Col
	if row < 0 || col < 0 {
		row, col = terrain.Highest(elev)
	}
	sim, err := flow.NewWithConfig(elev, row, col, flow.Config{Workers: cfg.Workers})
	if err != nil {
		return err
	}
	logger.Printf("start (%d,%d) elevation %d", row, col, elev.At(row, col))

	if cfg.FlowMap {
		fmt.Fprintln(stdout, "# flow map")
		if err := demio.Write(stdout, sim.FlowMap()); err != nil {
			return err
		}
	}

	var last *core.IntGrid
	n := 0
	for {
		snap, ok := sim.Next()
		if !ok {
			break
		}
		if cfg.All {
			fmt.Fprintf(stdout, "# step %d\n", n)
			if err := demio.Write(stdout, snap); err != nil {
				return err
			}
		}
		last = snap
		n++
	}
	logger.Printf("converged after %d snapshots, %d of %d cells wet", n, last.NonZero(), elev.W*elev.H)

	if !cfg.All {
		fmt.Fprintln(stdout, "# final")
		if err := demio.Write(stdout, last); err != nil {
			return err
		}
	}
	if cfg.Out != "" {
		if err := demio.Save(fs, cfg.Out, last); err != nil {
			return err
		}
		logger.Printf("wrote %s", cfg.Out)
	}
	return nil
}

func loadElevation(cfg *config, fs billy.Filesystem) (*core.IntGrid, error) {
	if cfg.DEM != "" {
		return demio.Load(fs, cfg.DEM)
	}
	return terrain.Generate(cfg.Terrain)
}
