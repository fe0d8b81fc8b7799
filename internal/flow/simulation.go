package flow

import (
	"fmt"

	"flood-ca/internal/core"
	"flood-ca/internal/stencil"
)

// Config controls how a Simulation evaluates its convolutions.
type Config struct {
	// Workers bounds the goroutines used per convolution. Values below 2 run
	// serially. Output does not depend on this setting.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// Simulation iterates the wet state of a single-source flood until it stops
// changing. A Simulation is not safe for concurrent use.
type Simulation struct {
	elev    *core.IntGrid
	flowMap *core.IntGrid
	current *core.IntGrid
	next    *core.IntGrid
	masked  *core.IntGrid
	engine  stencil.Engine

	startRow, startCol int

	started   bool
	converged bool
	steps     int
}

// New builds the flow map for elev and seeds a single wet cell at (row, col).
func New(elev *core.IntGrid, row, col int) (*Simulation, error) {
	return NewWithConfig(elev, row, col, DefaultConfig())
}

// NewWithConfig is New with explicit evaluation options.
func NewWithConfig(elev *core.IntGrid, row, col int, cfg Config) (*Simulation, error) {
	if elev == nil || elev.W <= 0 || elev.H <= 0 {
		return nil, fmt.Errorf("new simulation: %w", core.ErrInvalidDimensions)
	}
	if !elev.InBounds(row, col) {
		return nil, fmt.Errorf("new simulation: start (%d,%d) outside %dx%d grid: %w",
			row, col, elev.H, elev.W, core.ErrOutOfBounds)
	}
	engine := stencil.Engine{Workers: cfg.Workers}
	flowMap, err := buildFlowMap(engine, elev)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	current, err := core.NewIntGrid(elev.W, elev.H)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	current.Set(row, col, 1)
	return &Simulation{
		elev:     elev,
		flowMap:  flowMap,
		current:  current,
		next:     current.Clone(),
		masked:   current.Clone(),
		engine:   engine,
		startRow: row,
		startCol: col,
	}, nil
}

// Next returns the next wet-state snapshot. The first call returns the seeded
// state; each later call returns the state after one more step. Once a step
// leaves the state unchanged Next returns (nil, false) and keeps doing so.
// Returned grids are copies owned by the caller.
func (s *Simulation) Next() (*core.IntGrid, bool) {
	if s.converged {
		return nil, false
	}
	if !s.started {
		s.started = true
		return s.current.Clone(), true
	}
	if err := stepInto(s.engine, s.next, s.masked, s.current, s.flowMap); err != nil {
		// Every buffer was sized from elev at construction.
		panic(err)
	}
	if s.next.Equal(s.current) {
		s.converged = true
		return nil, false
	}
	s.current, s.next = s.next, s.current
	s.steps++
	return s.current.Clone(), true
}

// Run drains the simulation and returns every remaining snapshot in order.
func (s *Simulation) Run() []*core.IntGrid {
	var out []*core.IntGrid
	for {
		g, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, g)
	}
}

// Final drains the simulation and returns the converged wet state.
func (s *Simulation) Final() *core.IntGrid {
	for {
		if _, ok := s.Next(); !ok {
			return s.current.Clone()
		}
	}
}

// Converged reports whether the fixed point has been reached.
func (s *Simulation) Converged() bool { return s.converged }

// Steps returns the number of state changes applied so far.
func (s *Simulation) Steps() int { return s.steps }

// Current returns a copy of the latest wet state.
func (s *Simulation) Current() *core.IntGrid { return s.current.Clone() }

// FlowMap returns a copy of the downhill masks.
func (s *Simulation) FlowMap() *core.IntGrid { return s.flowMap.Clone() }

// Elevation returns the borrowed elevation grid.
func (s *Simulation) Elevation() *core.IntGrid { return s.elev }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.elev.Size() }

// Start returns the seeded cell.
func (s *Simulation) Start() (int, int) { return s.startRow, s.startCol }
