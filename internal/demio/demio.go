// Package demio reads and writes integer grids as whitespace separated text,
// one grid row per line. Blank lines and lines starting with '#' are ignored.
package demio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/src-d/go-billy.v4"

	"flood-ca/internal/core"
)

// Read parses a grid from r.
func Read(r io.Reader) (*core.IntGrid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", line, len(row), len(rows[0]), core.ErrRaggedRows)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return core.FromRows(rows)
}

// Write encodes g to w in the format accepted by Read.
func Write(w io.Writer, g *core.IntGrid) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(g.String()); err != nil {
		return err
	}
	return bw.Flush()
}

// Load reads the grid stored at path in fs.
func Load(fs billy.Filesystem, path string) (*core.IntGrid, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path in fs, replacing any existing file.
func Save(fs billy.Filesystem, path string, g *core.IntGrid) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Write(f, g); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
