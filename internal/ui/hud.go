//go:build ebiten

package ui

import (
	"image/color"

	"flood-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status bar over the simulation view.
type HUD struct {
	sim    core.Sim
	height int
	bar    *ebiten.Image
	line   string
	paused bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, height: basicfont.Face7x13.Height + 6}
}

// SetPaused records the pause state shown in the status line.
func (h *HUD) SetPaused(paused bool) { h.paused = paused }

// Update refreshes the status line from the simulation parameters.
func (h *HUD) Update() {
	h.line = StatusLine(h.sim, h.paused)
}

// Draw renders the status bar along the top of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	if w <= 0 {
		return
	}
	if h.bar == nil || h.bar.Bounds().Dx() != w {
		h.bar = ebiten.NewImage(w, h.height)
		h.bar.Fill(color.RGBA{A: 160})
	}
	screen.DrawImage(h.bar, nil)
	text.Draw(screen, h.line, basicfont.Face7x13, 4, basicfont.Face7x13.Ascent+3, color.White)
}
