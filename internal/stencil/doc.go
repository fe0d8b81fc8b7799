// Package stencil applies 3x3 neighbourhood kernels to integer grids.
//
// The source grid is copied into an (H+2)x(W+2) padded buffer whose outer ring
// is filled by a Border policy, so kernels never special-case edge cells: an
// edge cell simply sees the border value for any neighbour outside the grid.
package stencil
