package lifecycle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/plugin/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempInput(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "board.lp2")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestBeginParsesFlagsAndInput(t *testing.T) {
	in := writeTempInput(t, "TRACK,LAYER=1,WIDTH=200;")
	out := filepath.Join(t.TempDir(), "out.lp2")

	p := New()
	err := p.Begin([]string{"--width", "1000000", "--height", "800000", in, out})
	require.NoError(t, err)
	assert.Equal(t, Processing, p.State())
	require.Len(t, p.Input.Children, 1)
	assert.False(t, p.Salvaged)
}

func TestBeginMissingInputFileFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.lp2")
	p := New()
	err := p.Begin([]string{filepath.Join(t.TempDir(), "nope.lp2"), out})
	require.Error(t, err)
	assert.Equal(t, ParsingInput, p.State())
}

func TestBeginBadFlagsFails(t *testing.T) {
	p := New()
	err := p.Begin([]string{"--not-a-flag"})
	require.Error(t, err)
	assert.Equal(t, ParsingFlags, p.State())
}

func TestEndWritesOutputAndReturnsOperationCode(t *testing.T) {
	in := writeTempInput(t, "TRACK,LAYER=1,WIDTH=200;")
	out := filepath.Join(t.TempDir(), "out.lp2")

	p := New()
	require.NoError(t, p.Begin([]string{in, out}))

	tr, ok := elements.NewTrack(primitives.LayerCopperTop, 300, nil)
	require.True(t, ok)
	group, ok := elements.NewGroup([]elements.Element{tr})
	require.True(t, ok)
	p.SetOutput(*group)

	code := p.End(exitcode.ReplaceAbsolute)
	assert.Equal(t, 1, code)
	assert.Equal(t, Completed, p.State())

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "TRACK,LAYER=1,WIDTH=300;", string(written))
}

func TestEndWithNoneOperationSkipsOutput(t *testing.T) {
	in := writeTempInput(t, "TRACK,LAYER=1,WIDTH=200;")
	out := filepath.Join(t.TempDir(), "out.lp2")

	p := New()
	require.NoError(t, p.Begin([]string{in, out}))

	code := p.End(exitcode.None)
	assert.Equal(t, 0, code)
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestStateStringFallsBackToUninitialized(t *testing.T) {
	assert.Equal(t, "uninitialized", State(99).String())
}
