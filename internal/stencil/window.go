package stencil

// Window is a read-only 3x3 view into a padded buffer, centred on one cell of
// the source grid.
type Window struct {
	cells  []int
	stride int
	center int
}

// At returns the value at the given offset from the centre. Offsets must be
// in -1..1.
func (w Window) At(dRow, dCol int) int {
	return w.cells[w.center+dRow*w.stride+dCol]
}

// Center returns the centre value.
func (w Window) Center() int { return w.cells[w.center] }

// North returns the neighbour one row up.
func (w Window) North() int { return w.cells[w.center-w.stride] }

// South returns the neighbour one row down.
func (w Window) South() int { return w.cells[w.center+w.stride] }

// West returns the neighbour one column left.
func (w Window) West() int { return w.cells[w.center-1] }

// East returns the neighbour one column right.
func (w Window) East() int { return w.cells[w.center+1] }

// Sum adds all nine values in the window.
func (w Window) Sum() int {
	s := 0
	for dr := -1; dr <= 1; dr++ {
		base := w.center + dr*w.stride
		s += w.cells[base-1] + w.cells[base] + w.cells[base+1]
	}
	return s
}
