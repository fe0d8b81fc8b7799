package demio

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"

	"flood-ca/internal/core"
)

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# valley\n\n10 10 1 10\n 10 -2  3 10 \n"
	g, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{10, 10, 1, 10}, {10, -2, 3, 10}}, g.Rows())
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("1 2\n3\n"))
	assert.ErrorIs(t, err, core.ErrRaggedRows)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Read(strings.NewReader("1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1 column 2")

	_, err = Read(strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestWriteReadRoundTrip(t *testing.T) {
	g, err := core.FromRows([][]int{{1, 2, 3}, {4, 5, -6}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	assert.Equal(t, "1 2 3\n4 5 -6\n", buf.String())

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestSaveLoad(t *testing.T) {
	fs := memfs.New()
	g, err := core.FromRows([][]int{{7, 8}, {9, 10}})
	require.NoError(t, err)

	require.NoError(t, Save(fs, "maps/small.dem", g))
	back, err := Load(fs, "maps/small.dem")
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	_, err = Load(fs, "maps/missing.dem")
	assert.True(t, os.IsNotExist(err), "got %v", err)
}
