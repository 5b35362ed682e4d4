package pcb

import (
	"strings"
	"testing"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridValid(t *testing.T) {
	assert.True(t, Grid{}.Valid())
	g := GridOf(primitives.TupleOf(100, 100), 2000, 2000)
	assert.True(t, g.Valid())

	bad := GridOf(primitives.TupleOf(primitives.DistMax+1, 0), 0, 0)
	assert.False(t, bad.Valid())
}

func TestGridEmit(t *testing.T) {
	g := GridOf(primitives.TupleOf(0, 0), 1270, 1270)
	var sb strings.Builder
	require.NoError(t, g.Emit(&sb, primitives.FormatMM))
	assert.Equal(t, "grid{origin=0.0000mm/0.0000mm, width=0.1270mm, height=0.1270mm}", sb.String())
}

func TestFlagsValidAndEmit(t *testing.T) {
	f := PlaneTop | Multilayer
	assert.True(t, f.Valid())
	assert.True(t, f.Has(PlaneTop))
	assert.False(t, f.Has(PlaneBottom))

	var sb strings.Builder
	require.NoError(t, f.Emit(&sb, primitives.FormatCooked))
	assert.Equal(t, "top fill|multilayer", sb.String())
}

func TestFlagsEmitNone(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Flags(0).Emit(&sb, primitives.FormatCooked))
	assert.Equal(t, "none", sb.String())
}

func TestFlagsInvalidBitRejected(t *testing.T) {
	assert.False(t, Flags(1<<31).Valid())
}

func TestBoardValid(t *testing.T) {
	tr, ok := elements.NewTrack(primitives.LayerCopperTop, 200, nil)
	require.True(t, ok)
	group, ok := elements.NewGroup([]elements.Element{tr})
	require.True(t, ok)

	b, ok := NewBoard(1000000, 800000, *group)
	require.True(t, ok)
	assert.True(t, b.Valid())
}

func TestBoardInvalidSizeRejected(t *testing.T) {
	group, _ := elements.NewGroup(nil)
	_, ok := NewBoard(primitives.DistMax+1, 0, *group)
	assert.False(t, ok)
}

func TestBoardEmitCookedIncludesElements(t *testing.T) {
	tr, ok := elements.NewTrack(primitives.LayerCopperTop, 200, nil)
	require.True(t, ok)
	group, ok := elements.NewGroup([]elements.Element{tr})
	require.True(t, ok)

	b, ok := NewBoard(1000000, 800000, *group)
	require.True(t, ok)

	var sb strings.Builder
	require.NoError(t, b.Emit(&sb, primitives.FormatMM))
	assert.Contains(t, sb.String(), "elements=[track{")
	assert.Contains(t, sb.String(), "}]")
}

func TestBoardEmitRawIsElementStatements(t *testing.T) {
	tr, ok := elements.NewTrack(primitives.LayerCopperTop, 200, nil)
	require.True(t, ok)
	group, ok := elements.NewGroup([]elements.Element{tr})
	require.True(t, ok)

	b, ok := NewBoard(1000000, 800000, *group)
	require.True(t, ok)

	var sb strings.Builder
	require.NoError(t, b.Emit(&sb, primitives.FormatRaw))
	assert.Equal(t, "TRACK,LAYER=1,WIDTH=200;", sb.String())
}
