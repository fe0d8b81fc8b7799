// Package flood drives a single-source flow simulation over generated
// terrain for the interactive viewer.
package flood

import (
	"log"

	"flood-ca/internal/core"
	"flood-ca/internal/flow"
	"flood-ca/internal/terrain"
)

// World adapts a flow.Simulation to the core.Sim contract.
type World struct {
	cfg  Config
	w, h int

	elev *core.IntGrid
	wet  *core.IntGrid
	sim  *flow.Simulation

	startRow, startCol int
	frames             int

	display []uint8
}

// New returns a flood world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a flood world configured from the provided options.
// Non-positive dimensions are raised to one cell.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "flood" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Elevation exposes the generated terrain.
func (w *World) Elevation() *core.IntGrid { return w.elev }

// Wet returns a copy of the current wet state.
func (w *World) Wet() *core.IntGrid { return w.wet.Clone() }

// WetCount returns the number of wet cells.
func (w *World) WetCount() int { return w.wet.NonZero() }

// Converged reports whether the flood reached its fixed point.
func (w *World) Converged() bool { return w.sim.Converged() }

// Start returns the source cell of the current run.
func (w *World) Start() (int, int) { return w.startRow, w.startCol }

// Reset regenerates the terrain and restarts the flood. A zero seed reuses
// the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	tc := w.cfg.Terrain
	tc.Width, tc.Height, tc.Seed = w.w, w.h, effective

	elev, err := terrain.Generate(tc)
	if err != nil {
		// Dimensions are clamped to at least one cell in NewWithConfig.
		log.Panicf("flood: generate terrain: %v", err)
	}
	w.elev = elev

	row, col := w.cfg.StartRow, w.cfg.StartCol
	switch {
	case w.cfg.RandomStart:
		row, col = core.NewRNG(effective).Cell(w.Size())
	case row < 0 || col < 0:
		row, col = terrain.Highest(elev)
	}
	if !elev.InBounds(row, col) {
		log.Printf("flood: start (%d,%d) outside %dx%d grid, using highest cell", row, col, w.h, w.w)
		row, col = terrain.Highest(elev)
	}

	sim, err := flow.NewWithConfig(elev, row, col, flow.Config{Workers: w.cfg.Workers})
	if err != nil {
		log.Panicf("flood: %v", err)
	}
	w.sim = sim
	w.startRow, w.startCol = row, col
	w.frames = 0
	w.wet, _ = sim.Next()
	w.refreshDisplay()
}

// Step advances the flood by one snapshot. It is a no-op once converged.
func (w *World) Step() {
	next, ok := w.sim.Next()
	if !ok {
		return
	}
	w.wet = next
	w.frames++
	w.refreshDisplay()
}

// Parameters reports the world configuration and run progress.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.w),
				core.IntParam("h", "Height", w.h),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.IntParam("workers", "Workers", w.cfg.Workers),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				core.IntParam("octaves", "Octaves", w.cfg.Terrain.Octaves),
				core.FloatParam("scale", "Scale", w.cfg.Terrain.Scale),
				core.FloatParam("amplitude", "Amplitude", w.cfg.Terrain.Amplitude),
				core.IntParam("elev_min", "Lowest", w.elev.Min()),
				core.IntParam("elev_max", "Highest", w.elev.Max()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("row", "Start row", w.startRow),
				core.IntParam("col", "Start col", w.startCol),
				core.IntParam("step", "Step", w.frames),
				core.IntParam("wet", "Wet cells", w.WetCount()),
				core.BoolParam("converged", "Converged", w.Converged()),
			},
		},
	}}
}

func init() {
	core.Register("flood", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
