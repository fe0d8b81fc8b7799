// Package flow simulates surface water spreading downhill over an integer
// elevation grid.
//
// Each cell carries a 4-bit mask of its strictly lower cardinal neighbours.
// Starting from a single wet cell, every step wets the cells that a wet
// neighbour drains into. Wet cells never dry, so the wet set grows until it
// reaches a fixed point.
package flow
