package main

import (
	"testing"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorXReflectsAcrossCenterline(t *testing.T) {
	assert.EqualValues(t, 800, mirrorX(200, 1000))
	assert.EqualValues(t, 1000, mirrorX(0, 1000))
}

func TestMirrorElementTrack(t *testing.T) {
	tr, ok := elements.NewTrack(primitives.LayerCopperTop, 200, []primitives.Tuple{
		{X: 0, Y: 0}, {X: 300, Y: 100},
	})
	require.True(t, ok)

	mirrorElement(tr, 1000)
	assert.EqualValues(t, 1000, tr.Points[0].X)
	assert.EqualValues(t, 700, tr.Points[1].X)
	assert.EqualValues(t, 100, tr.Points[1].Y)
}

func TestMirrorElementComponentRecursesIntoChildren(t *testing.T) {
	id, ok := elements.NewText(primitives.TextID, primitives.LayerSilkscreenTop, primitives.TupleOf(100, 0), 1000, "U1")
	require.True(t, ok)
	val, ok := elements.NewText(primitives.TextValue, primitives.LayerSilkscreenTop, primitives.TupleOf(200, 0), 1000, "100n")
	require.True(t, ok)
	tr, ok := elements.NewTrack(primitives.LayerCopperTop, 200, []primitives.Tuple{{X: 50, Y: 0}})
	require.True(t, ok)
	comp, ok := elements.NewComponent(id, val, []elements.Element{tr})
	require.True(t, ok)

	mirrorElement(comp, 1000)
	assert.EqualValues(t, 900, comp.TextID.Position.X)
	assert.EqualValues(t, 800, comp.TextValue.Position.X)
	assert.EqualValues(t, 950, tr.Points[0].X)
}

func TestMirrorGroupAppliesToEveryChild(t *testing.T) {
	a, ok := elements.NewCircle(primitives.LayerCopperTop, 200, primitives.TupleOf(100, 0), 500)
	require.True(t, ok)
	b, ok := elements.NewCircle(primitives.LayerCopperTop, 200, primitives.TupleOf(400, 0), 500)
	require.True(t, ok)
	g, ok := elements.NewGroup([]elements.Element{a, b})
	require.True(t, ok)

	mirrorGroup(*g, 1000)
	assert.EqualValues(t, 900, a.Center.X)
	assert.EqualValues(t, 600, b.Center.X)
}
