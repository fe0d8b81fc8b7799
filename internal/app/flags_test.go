package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "2", "-sps", "30", "-p", "w=64", "-p", "octaves=3"})
	require.NoError(t, err)
	assert.Equal(t, "flood", cfg.Sim)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 30, cfg.SPS)
	assert.Equal(t, map[string]string{"w": "64", "octaves": "3"}, cfg.Params)
}

func TestConfigBindRejectsMalformedParam(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	assert.Error(t, fs.Parse([]string{"-p", "novalue"}))
}
