package elements

import (
	"errors"
	"testing"

	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackAppliesDefaults(t *testing.T) {
	tr, ok := NewTrack(primitives.LayerCopperTop, 2000, []primitives.Tuple{{X: 0, Y: 0}, {X: 100, Y: 0}})
	require.True(t, ok)
	assert.Equal(t, primitives.Dist(4000), tr.Clear)
	assert.False(t, tr.Cutout)
	assert.False(t, tr.Soldermask)
	assert.True(t, tr.Valid())
}

func TestNewTrackRejectsOutOfRangeLayer(t *testing.T) {
	tr := &Track{Layer: 99, Width: 2000}
	assert.False(t, tr.Valid())
}

func TestPadTHTThermalTracksWidthRange(t *testing.T) {
	p, ok := NewPadTHT(primitives.LayerCopperTop, primitives.Tuple{}, 2000, 800, primitives.PadFormRound)
	require.True(t, ok)
	assert.Equal(t, primitives.Dist(100), p.ThermalTracksWidth)

	p.ThermalTracksWidth = 50
	assert.True(t, p.Valid())
	p.ThermalTracksWidth = 49
	assert.False(t, p.Valid())
	p.ThermalTracksWidth = 300
	assert.True(t, p.Valid())
	p.ThermalTracksWidth = 301
	assert.False(t, p.Valid())
}

func TestPadSMTThermalTracksRange(t *testing.T) {
	p, ok := NewPadSMT(primitives.LayerCopperTop, primitives.Tuple{}, 1000, 500)
	require.True(t, ok)
	assert.Equal(t, int32(0x55), p.ThermalTracks)

	p.ThermalTracks = 0
	assert.True(t, p.Valid())
	p.ThermalTracks = 0xff
	assert.True(t, p.Valid())
	p.ThermalTracks = 0x100
	assert.False(t, p.Valid())
	p.ThermalTracks = -1
	assert.False(t, p.Valid())
}

func TestNewZoneDefaults(t *testing.T) {
	z, ok := NewZone(primitives.LayerMechanical, 100, nil)
	require.True(t, ok)
	assert.Equal(t, primitives.Dist(4000), z.Clear)
	assert.True(t, z.HatchAuto)
	assert.Equal(t, primitives.Dist(0), z.HatchWidth)
}

func TestNewTextDefaults(t *testing.T) {
	tx, ok := NewText(primitives.TextRegular, primitives.LayerCopperTop, primitives.Tuple{}, 1000, "hello")
	require.True(t, ok)
	assert.Equal(t, primitives.TextStyleRegular, tx.Style)
	assert.Equal(t, primitives.TextThicknessRegular, tx.Thickness)
	assert.True(t, tx.Visible)
}

func TestNewCircleDefaults(t *testing.T) {
	c, ok := NewCircle(primitives.LayerMechanical, 100, primitives.Tuple{}, 500)
	require.True(t, ok)
	assert.Equal(t, primitives.Angle(0), c.Start)
	assert.Equal(t, primitives.Angle(0), c.Stop)
	assert.False(t, c.Fill)
}

func TestNewComponentRequiresIDAndValueText(t *testing.T) {
	id, ok := NewText(primitives.TextID, primitives.LayerCopperTop, primitives.Tuple{}, 1000, "U1")
	require.True(t, ok)
	val, ok := NewText(primitives.TextValue, primitives.LayerCopperTop, primitives.Tuple{Y: 100}, 1000, "MCU")
	require.True(t, ok)

	comp, ok := NewComponent(id, val, nil)
	require.True(t, ok)
	assert.Nil(t, comp.Comment)
	assert.False(t, comp.UsePickplace)

	missing := &Component{TextID: nil, TextValue: val}
	assert.False(t, missing.Valid())
}

func TestGroupRecursionBound(t *testing.T) {
	var innermost Element = &Track{Layer: primitives.LayerCopperTop, Width: 100}
	for i := 0; i < MaxDepth; i++ {
		g, ok := NewGroup([]Element{innermost})
		require.True(t, ok)
		innermost = g
	}
	assert.True(t, innermost.Valid())

	g, ok := NewGroup([]Element{innermost})
	require.True(t, ok)
	assert.False(t, g.Valid())
}

func TestDestroyRecursionLimit(t *testing.T) {
	var innermost Element = &Track{Layer: primitives.LayerCopperTop, Width: 100}
	for i := 0; i <= MaxDepth+1; i++ {
		g, ok := NewGroup([]Element{innermost})
		_ = ok
		innermost = g
	}
	err := Destroy(innermost)
	require.Error(t, err)
	var e *errkind.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errkind.Recursion, e.Kind)
}

func TestDestroySeversChildSlices(t *testing.T) {
	tr := &Track{Layer: primitives.LayerCopperTop, Width: 100}
	g, ok := NewGroup([]Element{tr})
	require.True(t, ok)
	require.NoError(t, Destroy(g))
	assert.Nil(t, g.Children)
}
