package stencil

import "flood-ca/internal/core"

// Border decides the value seen for a neighbour outside the grid. Value is
// only called for coordinates one step outside the grid.
type Border interface {
	Value(g *core.IntGrid, row, col int) int
}

// Constant fills every out-of-bounds neighbour with a fixed value.
type Constant int

// Value implements Border.
func (b Constant) Value(*core.IntGrid, int, int) int { return int(b) }

type clamp struct{}

// Clamp repeats the nearest edge cell.
func Clamp() Border { return clamp{} }

func (clamp) Value(g *core.IntGrid, row, col int) int {
	return g.At(clampIndex(row, g.H), clampIndex(col, g.W))
}

type wrap struct{}

// Wrap treats the grid as a torus.
func Wrap() Border { return wrap{} }

func (wrap) Value(g *core.IntGrid, row, col int) int {
	return g.At(g.Wrap(row, col))
}

type mirror struct{}

// Reflect mirrors the grid across its edges, excluding the edge cell itself.
// Grids one cell wide along an axis fall back to that single cell.
func Reflect() Border { return mirror{} }

func (mirror) Value(g *core.IntGrid, row, col int) int {
	return g.At(reflectIndex(row, g.H), reflectIndex(col, g.W))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	if i < 0 {
		return -i
	}
	if i >= n {
		return 2*(n-1) - i
	}
	return i
}
