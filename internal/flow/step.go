package flow

import (
	"fmt"

	"flood-ca/internal/core"
	"flood-ca/internal/stencil"
)

// StepKernel runs over a masked grid (wet state times flow mask). The centre
// becomes wet when it carries flow itself or a neighbour drains into it.
func StepKernel(w stencil.Window) int {
	if w.Center() > 0 {
		return 1
	}
	if w.East()&inflowBits[East] != 0 ||
		w.South()&inflowBits[South] != 0 ||
		w.West()&inflowBits[West] != 0 ||
		w.North()&inflowBits[North] != 0 {
		return 1
	}
	return 0
}

// Step computes the wet state following current under flowMap. Cells wet in
// current stay wet, including sinks whose mask is zero.
func Step(current, flowMap *core.IntGrid) (*core.IntGrid, error) {
	if current == nil || current.W <= 0 || current.H <= 0 {
		return nil, fmt.Errorf("flow step: %w", core.ErrInvalidDimensions)
	}
	if !current.SameSize(flowMap) {
		return nil, fmt.Errorf("flow step: %w", core.ErrSizeMismatch)
	}
	masked := current.Clone()
	next := current.Clone()
	if err := stepInto(stencil.Engine{}, next, masked, current, flowMap); err != nil {
		return nil, err
	}
	return next, nil
}

// stepInto writes the successor of current into next using masked as
// scratch. All grids share dimensions.
func stepInto(e stencil.Engine, next, masked, current, flowMap *core.IntGrid) error {
	m, cur, fm := masked.Cells(), current.Cells(), flowMap.Cells()
	for i := range m {
		m[i] = cur[i] * fm[i]
	}
	if err := e.Into(next, masked, StepKernel, stencil.Constant(0)); err != nil {
		return fmt.Errorf("flow step: %w", err)
	}
	out := next.Cells()
	for i, v := range cur {
		if v != 0 {
			out[i] = 1
		}
	}
	return nil
}
