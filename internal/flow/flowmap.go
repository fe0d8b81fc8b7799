package flow

import (
	"fmt"
	"math"

	"flood-ca/internal/core"
	"flood-ca/internal/stencil"
)

// HighGround is the elevation assumed beyond the grid edge. It is higher than
// any real terrain so edge cells never drain off the grid.
const HighGround = math.MaxInt

// FlowMapKernel computes the downhill mask of the window centre.
func FlowMapKernel(w stencil.Window) int {
	c := w.Center()
	mask := 0
	if c > w.West() {
		mask |= downhillBits[West]
	}
	if c > w.North() {
		mask |= downhillBits[North]
	}
	if c > w.East() {
		mask |= downhillBits[East]
	}
	if c > w.South() {
		mask |= downhillBits[South]
	}
	return mask
}

// BuildFlowMap computes the downhill mask of every cell in elev.
func BuildFlowMap(elev *core.IntGrid) (*core.IntGrid, error) {
	return buildFlowMap(stencil.Engine{}, elev)
}

func buildFlowMap(e stencil.Engine, elev *core.IntGrid) (*core.IntGrid, error) {
	m, err := e.Convolve(elev, FlowMapKernel, stencil.Constant(HighGround))
	if err != nil {
		return nil, fmt.Errorf("build flow map: %w", err)
	}
	return m, nil
}
