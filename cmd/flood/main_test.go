package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"flood-ca/internal/core"
	"flood-ca/internal/demio"
)

const valley = `# single channel
10 10 1 10 10
10 10 2 10 10
10 10 3 10 10
10 10 2 10 10
10 10 1 10 10
`

func TestRunValleyFromFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "valley.dem", []byte(valley), 0o644))

	cfg := newConfig()
	cfg.DEM = "valley.dem"
	cfg.Row, cfg.Col = 2, 2
	cfg.Out = "wet.txt"
	cfg.Quiet = true

	var out bytes.Buffer
	require.NoError(t, run(cfg, fs, &out, log.New(io.Discard, "", 0)))

	want := "# final\n0 0 1 0 0\n0 0 1 0 0\n0 0 1 0 0\n0 0 1 0 0\n0 0 1 0 0\n"
	assert.Equal(t, want, out.String())

	saved, err := demio.Load(fs, "wet.txt")
	require.NoError(t, err)
	assert.Equal(t, 5, saved.NonZero())
}

func TestRunPrintsEverySnapshot(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "line.dem", []byte("3 2 1\n"), 0o644))

	cfg := newConfig()
	cfg.DEM = "line.dem"
	cfg.Row, cfg.Col = 0, 0
	cfg.All = true
	cfg.FlowMap = true

	var out, logs bytes.Buffer
	require.NoError(t, run(cfg, fs, &out, log.New(&logs, "", 0)))

	want := "# flow map\n2 2 0\n# step 0\n1 0 0\n# step 1\n1 1 0\n# step 2\n1 1 1\n"
	assert.Equal(t, want, out.String())
	assert.Contains(t, logs.String(), "converged after 3 snapshots, 3 of 3 cells wet")
}

func TestRunGeneratedTerrainStartsAtHighestCell(t *testing.T) {
	cfg := newConfig()
	cfg.Terrain.Width = 12
	cfg.Terrain.Height = 9
	cfg.Quiet = true

	var out bytes.Buffer
	require.NoError(t, run(cfg, memfs.New(), &out, log.New(io.Discard, "", 0)))

	body := strings.TrimPrefix(out.String(), "# final\n")
	g, err := demio.Read(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 12, g.W)
	assert.Equal(t, 9, g.H)
	assert.GreaterOrEqual(t, g.NonZero(), 1)
}

func TestRunFailsBeforeSteppingOnBadStart(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "tiny.dem", []byte("1 2\n3 4\n"), 0o644))

	cfg := newConfig()
	cfg.DEM = "tiny.dem"
	cfg.Row, cfg.Col = 5, 0

	var out bytes.Buffer
	err := run(cfg, fs, &out, log.New(io.Discard, "", 0))
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.Empty(t, out.String())
}

func TestRunMissingFile(t *testing.T) {
	cfg := newConfig()
	cfg.DEM = "nope.dem"
	err := run(cfg, memfs.New(), io.Discard, log.New(io.Discard, "", 0))
	assert.Error(t, err)
}
