package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flood-ca/internal/core"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	cfg.Seed++
	c, err := Generate(cfg)
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should produce different terrain")
}

func TestGenerateRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.Base = 100
	cfg.Amplitude = 50

	g, err := Generate(cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.Min(), 100)
	assert.LessOrEqual(t, g.Max(), 150)
	assert.Greater(t, g.Max(), g.Min(), "terrain should not be flat")
}

func TestGenerateRejectsDegenerateSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	_, err := Generate(cfg)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestExtremes(t *testing.T) {
	g, err := core.FromRows([][]int{
		{4, 9, 1},
		{9, 1, 0},
	})
	require.NoError(t, err)

	r, c := Highest(g)
	assert.Equal(t, [2]int{0, 1}, [2]int{r, c})
	r, c = Lowest(g)
	assert.Equal(t, [2]int{1, 2}, [2]int{r, c})
}
