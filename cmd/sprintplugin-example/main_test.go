package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/laminoid-pcb/sprintplugin/plugin/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReplacesSelectionWithParsedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "board.lp2")
	out := filepath.Join(dir, "out.lp2")
	require.NoError(t, os.WriteFile(in, []byte("TRACK,LAYER=1,WIDTH=200;"), 0o644))

	code := run([]string{"--width", "1000000", "--height", "800000", in, out})
	assert.Equal(t, int(exitcode.ReplaceAbsolute), code)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "TRACK,LAYER=1,WIDTH=200;", string(written))
}

func TestRunMissingInputFails(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{filepath.Join(dir, "missing.lp2"), filepath.Join(dir, "out.lp2")})
	assert.True(t, code >= exitcode.FailedLibraryStart && code < exitcode.FailedPluginStart)
}
