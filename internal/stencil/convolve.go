package stencil

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"flood-ca/internal/core"
)

// Kernel maps a neighbourhood to the output value for its centre cell.
// Kernels must be pure.
type Kernel func(Window) int

// Padded is a source grid surrounded by a one-cell border ring.
type Padded struct {
	W, H  int
	cells []int
}

// Pad builds the (H+2)x(W+2) padded copy of src. A nil border behaves like
// Constant(0).
func Pad(src *core.IntGrid, border Border) *Padded {
	if border == nil {
		border = Constant(0)
	}
	pw, ph := src.W+2, src.H+2
	p := &Padded{W: src.W, H: src.H, cells: make([]int, pw*ph)}
	if b, ok := border.(Constant); ok {
		for i := range p.cells {
			p.cells[i] = int(b)
		}
	} else {
		for r := -1; r <= src.H; r++ {
			for c := -1; c <= src.W; c++ {
				if src.InBounds(r, c) {
					continue
				}
				p.cells[(r+1)*pw+c+1] = border.Value(src, r, c)
			}
		}
	}
	cells := src.Cells()
	for r := 0; r < src.H; r++ {
		copy(p.cells[(r+1)*pw+1:(r+1)*pw+1+src.W], cells[r*src.W:(r+1)*src.W])
	}
	return p
}

// Window returns the 3x3 view centred on source cell (row, col).
func (p *Padded) Window(row, col int) Window {
	stride := p.W + 2
	return Window{cells: p.cells, stride: stride, center: (row+1)*stride + col + 1}
}

func (p *Padded) apply(dst []int, k Kernel, rowStart, rowEnd int) {
	stride := p.W + 2
	win := Window{cells: p.cells, stride: stride}
	for r := rowStart; r < rowEnd; r++ {
		out := dst[r*p.W : (r+1)*p.W]
		win.center = (r+1)*stride + 1
		for c := range out {
			out[c] = k(win)
			win.center++
		}
	}
}

// Engine runs convolutions, optionally splitting rows across goroutines.
// The zero value runs serially.
type Engine struct {
	// Workers bounds the number of concurrent row bands. Values below 2 run
	// on the calling goroutine.
	Workers int
}

// Convolve applies k to every cell of src and returns the result as a new grid.
func (e Engine) Convolve(src *core.IntGrid, k Kernel, border Border) (*core.IntGrid, error) {
	if src == nil || src.W <= 0 || src.H <= 0 {
		return nil, fmt.Errorf("convolve: %w", core.ErrInvalidDimensions)
	}
	dst, err := core.NewIntGrid(src.W, src.H)
	if err != nil {
		return nil, err
	}
	if err := e.Into(dst, src, k, border); err != nil {
		return nil, err
	}
	return dst, nil
}

// Into applies k to every cell of src and writes the result into dst, which
// must have the same dimensions and must not alias src.
func (e Engine) Into(dst, src *core.IntGrid, k Kernel, border Border) error {
	if src == nil || src.W <= 0 || src.H <= 0 {
		return fmt.Errorf("convolve: %w", core.ErrInvalidDimensions)
	}
	if !src.SameSize(dst) {
		return fmt.Errorf("convolve into: %w", core.ErrSizeMismatch)
	}
	p := Pad(src, border)
	out := dst.Cells()

	workers := e.Workers
	if workers > src.H {
		workers = src.H
	}
	if workers < 2 {
		p.apply(out, k, 0, src.H)
		return nil
	}

	rowsPer := (src.H + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < src.H; start += rowsPer {
		start, end := start, min(start+rowsPer, src.H)
		g.Go(func() error {
			p.apply(out, k, start, end)
			return nil
		})
	}
	return g.Wait()
}

// Convolve applies k serially. See Engine.Convolve.
func Convolve(src *core.IntGrid, k Kernel, border Border) (*core.IntGrid, error) {
	return Engine{}.Convolve(src, k, border)
}

// Into applies k serially into dst. See Engine.Into.
func Into(dst, src *core.IntGrid, k Kernel, border Border) error {
	return Engine{}.Into(dst, src, k, border)
}
