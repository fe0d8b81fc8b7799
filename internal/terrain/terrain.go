// Package terrain generates synthetic elevation grids from summed simplex
// noise octaves.
package terrain

import (
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"

	"flood-ca/internal/core"
)

// Config controls terrain generation.
type Config struct {
	Width  int
	Height int
	Seed   int64

	// Octaves is the number of noise layers summed together.
	Octaves int

	// Scale is the feature size in cells of the first octave.
	Scale float64

	// Amplitude is the elevation range of the first octave.
	Amplitude float64

	// Base is the lowest elevation produced.
	Base int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     128,
		Height:    96,
		Seed:      1337,
		Octaves:   4,
		Scale:     48,
		Amplitude: 200,
		Base:      0,
	}
}

// Generate builds an elevation grid. Each octave halves its feature size and
// amplitude and draws from its own noise seed.
func Generate(cfg Config) (*core.IntGrid, error) {
	g, err := core.NewIntGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	octaves := cfg.Octaves
	if octaves < 1 {
		octaves = 1
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	noises := make([]opensimplex.Noise, octaves)
	total := 0.0
	amp := cfg.Amplitude
	for i := range noises {
		noises[i] = opensimplex.NewNormalized(cfg.Seed + int64(i))
		total += amp
		amp /= 2
	}

	cells := g.Cells()
	for r := 0; r < cfg.Height; r++ {
		for c := 0; c < cfg.Width; c++ {
			v := 0.0
			freq := 1 / scale
			weight := cfg.Amplitude
			for _, n := range noises {
				v += weight * n.Eval2(float64(c)*freq, float64(r)*freq)
				freq *= 2
				weight /= 2
			}
			if total > 0 {
				v = v / total * cfg.Amplitude
			}
			cells[g.Index(r, c)] = cfg.Base + int(math.Round(v))
		}
	}
	return g, nil
}

// Lowest returns the first cell in row-major order holding the minimum value.
func Lowest(g *core.IntGrid) (int, int) {
	return extreme(g, func(a, b int) bool { return a < b })
}

// Highest returns the first cell in row-major order holding the maximum value.
func Highest(g *core.IntGrid) (int, int) {
	return extreme(g, func(a, b int) bool { return a > b })
}

func extreme(g *core.IntGrid, better func(a, b int) bool) (int, int) {
	best := 0
	cells := g.Cells()
	for i, v := range cells {
		if better(v, cells[best]) {
			best = i
		}
	}
	return best / g.W, best % g.W
}
