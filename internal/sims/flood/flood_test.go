package flood

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flood-ca/internal/core"
	"flood-ca/internal/terrain"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 18
	cfg.Seed = 99
	return cfg
}

func runToFixedPoint(t *testing.T, w *World) int {
	t.Helper()
	limit := w.w * w.h
	for i := 0; i <= limit; i++ {
		if w.Converged() {
			return i
		}
		w.Step()
	}
	t.Fatalf("flood did not converge within %d steps", limit)
	return 0
}

func TestResetDeterministic(t *testing.T) {
	world := NewWithConfig(smallConfig())
	initialElev := world.Elevation().Clone()
	initialCells := append([]uint8(nil), world.Cells()...)

	runToFixedPoint(t, world)
	world.Reset(0)

	assert.True(t, initialElev.Equal(world.Elevation()), "Reset with config seed not deterministic for terrain")
	assert.True(t, slices.Equal(initialCells, world.Cells()), "Reset with config seed not deterministic for display buffer")

	world.Reset(777)
	assert.False(t, initialElev.Equal(world.Elevation()), "different seeds should produce different terrain")
}

func TestDefaultStartIsHighestCell(t *testing.T) {
	world := NewWithConfig(smallConfig())
	wantRow, wantCol := terrain.Highest(world.Elevation())
	row, col := world.Start()
	assert.Equal(t, wantRow, row)
	assert.Equal(t, wantCol, col)
	assert.Equal(t, 1, world.WetCount())
}

func TestExplicitAndInvalidStart(t *testing.T) {
	cfg := smallConfig()
	cfg.StartRow, cfg.StartCol = 3, 5
	world := NewWithConfig(cfg)
	row, col := world.Start()
	assert.Equal(t, [2]int{3, 5}, [2]int{row, col})

	cfg.StartRow, cfg.StartCol = 100, 5
	world = NewWithConfig(cfg)
	wantRow, wantCol := terrain.Highest(world.Elevation())
	row, col = world.Start()
	assert.Equal(t, [2]int{wantRow, wantCol}, [2]int{row, col})
}

func TestRandomStartFollowsSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.RandomStart = true
	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	ar, ac := a.Start()
	br, bc := b.Start()
	assert.Equal(t, [2]int{ar, ac}, [2]int{br, bc})
	assert.True(t, a.Elevation().InBounds(ar, ac))
}

func TestStepGrowsWetAreaUntilConverged(t *testing.T) {
	world := NewWithConfig(smallConfig())
	prev := world.Wet()
	for !world.Converged() {
		world.Step()
		cur := world.Wet()
		for i, v := range prev.Cells() {
			if v != 0 {
				require.NotZero(t, cur.Cells()[i], "cell %d dried", i)
			}
		}
		prev = cur
	}

	before := world.Wet()
	world.Step()
	assert.True(t, before.Equal(world.Wet()), "converged world must not change")
}

func TestDisplayEncodesWetCells(t *testing.T) {
	world := NewWithConfig(smallConfig())
	runToFixedPoint(t, world)

	wet := world.Wet().Cells()
	palette := world.Palette()
	for i, v := range world.Cells() {
		assert.Equal(t, wet[i] != 0, v&displayWetBit != 0, "cell %d", i)
		assert.Less(t, int(v), len(palette))
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "40",
		"h":            "30",
		"seed":         "5",
		"row":          "2",
		"col":          "3",
		"workers":      "4",
		"octaves":      "2",
		"scale":        "12.5",
		"amplitude":    "80",
		"random_start": "true",
		"bogus":        "ignored",
	})
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, 2, cfg.StartRow)
	assert.Equal(t, 3, cfg.StartCol)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.RandomStart)
	assert.Equal(t, 2, cfg.Terrain.Octaves)
	assert.Equal(t, 12.5, cfg.Terrain.Scale)
	assert.Equal(t, 80.0, cfg.Terrain.Amplitude)
	assert.Equal(t, 40, cfg.Terrain.Width)

	bad := FromMap(map[string]string{"w": "-1", "scale": "zero"})
	assert.Equal(t, DefaultConfig().Width, bad.Width)
	assert.Equal(t, DefaultConfig().Terrain.Scale, bad.Terrain.Scale)
}

func TestRegisteredWithCore(t *testing.T) {
	factory, ok := core.Sims()["flood"]
	require.True(t, ok)
	sim := factory(map[string]string{"w": "16", "h": "8"})
	assert.Equal(t, "flood", sim.Name())
	assert.Equal(t, core.Size{W: 16, H: 8}, sim.Size())
	assert.Len(t, sim.Cells(), 16*8)
}

func TestParametersReportProgress(t *testing.T) {
	world := NewWithConfig(smallConfig())
	steps := runToFixedPoint(t, world)

	snap := world.Parameters()
	p, ok := snap.Lookup("converged")
	require.True(t, ok)
	assert.Equal(t, "true", p.Value)

	p, ok = snap.Lookup("step")
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(steps-1), p.Value)
}
