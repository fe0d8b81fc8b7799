package core

import (
	"fmt"
	"strconv"
	"strings"
)

// IntGrid stores a 2D grid of signed integer cell values in row-major order.
// Coordinates are (row, col) with row 0 at the top.
type IntGrid struct {
	W, H int
	data []int
}

// NewIntGrid allocates a zeroed grid with the given dimensions.
func NewIntGrid(w, h int) (*IntGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	return &IntGrid{W: w, H: h, data: make([]int, w*h)}, nil
}

// FromRows copies a row-wise literal into a new grid.
func FromRows(rows [][]int) (*IntGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid from rows: %w", ErrInvalidDimensions)
	}
	w := len(rows[0])
	g := &IntGrid{W: w, H: len(rows), data: make([]int, 0, w*len(rows))}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid from rows: row %d has %d columns, want %d: %w", i, len(row), w, ErrRaggedRows)
		}
		g.data = append(g.data, row...)
	}
	return g, nil
}

// Size reports the grid dimensions.
func (g *IntGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IntGrid) Cells() []int { return g.data }

// Index returns the linear slice index for (row, col).
func (g *IntGrid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) lies inside the grid.
func (g *IntGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// At returns the value at (row, col). The coordinate must be in bounds.
func (g *IntGrid) At(row, col int) int { return g.data[row*g.W+col] }

// Set stores v at (row, col). The coordinate must be in bounds.
func (g *IntGrid) Set(row, col, v int) { g.data[row*g.W+col] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *IntGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Fill sets every cell to v.
func (g *IntGrid) Fill(v int) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *IntGrid) Clone() *IntGrid {
	out := &IntGrid{W: g.W, H: g.H, data: make([]int, len(g.data))}
	copy(out.data, g.data)
	return out
}

// SameSize reports whether o has the same dimensions as g.
func (g *IntGrid) SameSize(o *IntGrid) bool {
	return o != nil && g.W == o.W && g.H == o.H
}

// CopyFrom overwrites g with the contents of src.
func (g *IntGrid) CopyFrom(src *IntGrid) error {
	if !g.SameSize(src) {
		return ErrSizeMismatch
	}
	copy(g.data, src.data)
	return nil
}

// Equal reports whether both grids have the same dimensions and values.
func (g *IntGrid) Equal(o *IntGrid) bool {
	if !g.SameSize(o) {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of cells for which keep returns true.
func (g *IntGrid) Count(keep func(int) bool) int {
	n := 0
	for _, v := range g.data {
		if keep(v) {
			n++
		}
	}
	return n
}

// NonZero returns the number of cells holding a nonzero value.
func (g *IntGrid) NonZero() int {
	return g.Count(func(v int) bool { return v != 0 })
}

// Min returns the smallest cell value.
func (g *IntGrid) Min() int {
	m := g.data[0]
	for _, v := range g.data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest cell value.
func (g *IntGrid) Max() int {
	m := g.data[0]
	for _, v := range g.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Rows returns a row-wise copy of the grid.
func (g *IntGrid) Rows() [][]int {
	rows := make([][]int, g.H)
	for r := range rows {
		rows[r] = append([]int(nil), g.data[r*g.W:(r+1)*g.W]...)
	}
	return rows
}

// String renders the grid one row per line with space separated values.
func (g *IntGrid) String() string {
	var sb strings.Builder
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(g.data[r*g.W+c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
