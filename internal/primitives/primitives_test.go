package primitives

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistValid(t *testing.T) {
	tests := []struct {
		name  string
		dist  Dist
		valid bool
	}{
		{"min", DistMin, true},
		{"max", DistMax, true},
		{"zero", 0, true},
		{"one below min", DistMin - 1, false},
		{"one above max", DistMax + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.dist.Valid())
		})
	}
}

func TestSizeValid(t *testing.T) {
	assert.True(t, SizeValid(0))
	assert.True(t, SizeValid(DistMax))
	assert.False(t, SizeValid(-1))
	assert.False(t, SizeValid(DistMax+1))
}

func TestDistEmitRaw(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Dist(2000).Emit(&sb, FormatRaw))
	assert.Equal(t, "2000", sb.String())
}

func TestDistEmitCookedUnits(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatMM, "0.1000mm"},
		{FormatUM, "100.0um"},
		{FormatCM, "0.001000cm"},
		{FormatTH, "3.238th"},
		{FormatIN, "0.01000in"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, Dist(1000).Emit(&sb, tt.format))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

// TestDistEmitNegativeSubUnit documents an inherited quirk: the original
// printf-style "%d.%0*d" rendering loses the sign when the magnitude is
// smaller than one whole unit, since the truncated whole part is zero and
// only the zero-padded fractional part carries the (now-unsigned) magnitude.
// This is not one of the documented Open Questions, so it is carried as-is.
func TestDistEmitNegativeSubUnit(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Dist(-1000).Emit(&sb, FormatMM))
	assert.Equal(t, "0.1000mm", sb.String())
}

func TestDistEmitNegativeWholeUnit(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Dist(-15000).Emit(&sb, FormatMM))
	assert.Equal(t, "-1.5000mm", sb.String())
}

func TestAngleValidAndSuspicious(t *testing.T) {
	assert.True(t, Angle(0).Valid())
	assert.False(t, Angle(0).Suspicious())

	assert.True(t, Angle(AngleMax).Valid())
	assert.False(t, Angle(AngleMax).Suspicious())
	assert.False(t, Angle(AngleMax+1).Valid())

	// Within the historical (buggy) floor but outside the intended range:
	// accepted, but flagged suspicious per Open Question (a).
	suspicious := Angle(AngleMin - 1)
	assert.True(t, suspicious.Valid())
	assert.True(t, suspicious.Suspicious())

	assert.False(t, Angle(angleHistoricalFloor-1).Valid())
}

func TestAngleEmit(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Angle(90000).Emit(&sb, FormatCooked))
	assert.Equal(t, "90.000deg", sb.String())
}

func TestLayerValidAndWords(t *testing.T) {
	assert.True(t, LayerCopperTop.Valid())
	assert.False(t, Layer(0).Valid())
	assert.False(t, Layer(8).Valid())

	l, ok := LayerFromWord("Top Copper")
	require.True(t, ok)
	assert.Equal(t, LayerCopperTop, l)

	_, ok = LayerFromWord("nonexistent")
	assert.False(t, ok)
}

func TestLayerEmitRawIsIndex(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, LayerCopperBottom.Emit(&sb, FormatRaw))
	assert.Equal(t, "3", sb.String())
}

func TestTupleValid(t *testing.T) {
	assert.True(t, TupleOf(0, 0).Valid())
	assert.False(t, TupleOf(DistMax+1, 0).Valid())
}

func TestTupleEmitRaw(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, TupleOf(100, 200).Emit(&sb, FormatRaw))
	assert.Equal(t, "100/200", sb.String())
}

func TestPadFormRoundTrip(t *testing.T) {
	for f := PadFormRound; f <= PadFormHighRectangular; f++ {
		var sb strings.Builder
		require.NoError(t, f.Emit(&sb, FormatCooked))
		got, ok := PadFormFromWord(sb.String())
		require.True(t, ok, "word %q", sb.String())
		assert.Equal(t, f, got)
	}
}

func TestTextSubtypeKeyword(t *testing.T) {
	assert.Equal(t, "TEXT", TextRegular.Keyword())
	assert.Equal(t, "ID_TEXT", TextID.Keyword())
	assert.Equal(t, "VALUE_TEXT", TextValue.Keyword())
}
