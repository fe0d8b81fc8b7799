package flood

import "image/color"

const (
	displayBandMask = 0x07
	displayWetBit   = 0x08
	displayBands    = displayBandMask + 1
)

var floodPalette = buildFloodPalette()

// Palette exposes the color palette used for rendering the flood world.
func (w *World) Palette() []color.RGBA {
	return floodPalette
}

func buildFloodPalette() []color.RGBA {
	palette := make([]color.RGBA, 2*displayBands)
	low := color.RGBA{R: 60, G: 90, B: 40, A: 255}
	high := color.RGBA{R: 200, G: 190, B: 170, A: 255}
	shallow := color.RGBA{R: 90, G: 170, B: 230, A: 255}
	deep := color.RGBA{R: 20, G: 60, B: 150, A: 255}
	for band := 0; band < displayBands; band++ {
		t := float64(band) / float64(displayBands-1)
		palette[band] = lerp(low, high, t)
		palette[band|displayWetBit] = lerp(deep, shallow, t)
	}
	return palette
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// refreshDisplay encodes each cell as an elevation band with the wet bit set
// for wet cells.
func (w *World) refreshDisplay() {
	lo, hi := w.elev.Min(), w.elev.Max()
	span := hi - lo
	elev := w.elev.Cells()
	wet := w.wet.Cells()
	for i := range w.display {
		band := 0
		if span > 0 {
			band = (elev[i] - lo) * (displayBands - 1) / span
		}
		v := uint8(band)
		if wet[i] != 0 {
			v |= displayWetBit
		}
		w.display[i] = v
	}
}
