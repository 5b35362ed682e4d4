package parser

import (
	"strings"
	"testing"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) (*elements.Group, *Parser) {
	t.Helper()
	p := New(token.NewStringSource(input), "doc")
	doc, _, err := p.Document()
	require.NoError(t, err)
	return doc, p
}

func TestParseTrackWithPoints(t *testing.T) {
	doc, p := parse(t, "TRACK,LAYER=1,WIDTH=200,P0=0/0,P1=100/100;")
	require.Len(t, doc.Children, 1)
	require.False(t, p.Salvaged())

	tr, ok := doc.Children[0].(*elements.Track)
	require.True(t, ok)
	assert.Equal(t, elements.TrackDefaults.Clear, tr.Clear)
	assert.True(t, tr.Parsed())
	require.Len(t, tr.Points, 2)
	assert.Equal(t, primitives.Dist(100), tr.Points[1].X)
}

func TestParseCaseInsensitiveTagAndFields(t *testing.T) {
	doc, _ := parse(t, "track,Layer=1,Width=200;")
	require.Len(t, doc.Children, 1)
	_, ok := doc.Children[0].(*elements.Track)
	assert.True(t, ok)
}

func TestParseRecoversFromBadFieldValue(t *testing.T) {
	doc, p := parse(t, "TRACK,LAYER=1,WIDTH=notanumber;TRACK,LAYER=1,WIDTH=200;")
	require.Len(t, doc.Children, 1)
	assert.True(t, p.Salvaged())
	assert.NotEmpty(t, p.Warnings())

	tr, ok := doc.Children[0].(*elements.Track)
	require.True(t, ok)
	assert.Equal(t, primitives.Dist(200), tr.Width)
}

func TestParseUnknownTagIsSalvaged(t *testing.T) {
	doc, p := parse(t, "TRAK;TRACK,LAYER=1,WIDTH=200;")
	require.Len(t, doc.Children, 1)
	assert.True(t, p.Salvaged())
	require.NotEmpty(t, p.Warnings())
	assert.Contains(t, p.Warnings()[0].Message, "did you mean")
}

func TestParseUnknownFieldIsWarnedNotFatal(t *testing.T) {
	doc, p := parse(t, "TRACK,LAYER=1,WIDTH=200,BOGUS=1;")
	require.Len(t, doc.Children, 1)
	assert.True(t, p.Salvaged())
	_, ok := doc.Children[0].(*elements.Track)
	assert.True(t, ok)
}

func TestParseComponentAssemblesIDAndValueText(t *testing.T) {
	doc, p := parse(t, "BEGIN_COMPONENT,ROTATION=900;"+
		"ID_TEXT,LAYER=2,POS=0/0,HEIGHT=100,TEXT=|R1|;"+
		"VALUE_TEXT,LAYER=2,POS=0/0,HEIGHT=100,TEXT=|10k|;"+
		"END_COMPONENT;")
	require.Len(t, doc.Children, 1)
	require.False(t, p.Salvaged())

	c, ok := doc.Children[0].(*elements.Component)
	require.True(t, ok)
	require.NotNil(t, c.TextID)
	require.NotNil(t, c.TextValue)
	assert.Equal(t, "R1", c.TextID.Text)
	assert.Equal(t, "10k", c.TextValue.Text)
	assert.Empty(t, c.Children)
}

func TestParseComponentSynthesizesMissingText(t *testing.T) {
	doc, p := parse(t, "BEGIN_COMPONENT;END_COMPONENT;")
	require.Len(t, doc.Children, 1)
	assert.True(t, p.Salvaged())

	c, ok := doc.Children[0].(*elements.Component)
	require.True(t, ok)
	require.NotNil(t, c.TextID)
	require.NotNil(t, c.TextValue)
}

func TestParseComponentWithTrackChild(t *testing.T) {
	doc, _ := parse(t, "BEGIN_COMPONENT;"+
		"ID_TEXT,LAYER=2,POS=0/0,HEIGHT=100,TEXT=|R1|;"+
		"VALUE_TEXT,LAYER=2,POS=0/0,HEIGHT=100,TEXT=|10k|;"+
		"TRACK,LAYER=1,WIDTH=200;"+
		"END_COMPONENT;")
	require.Len(t, doc.Children, 1)
	c, ok := doc.Children[0].(*elements.Component)
	require.True(t, ok)
	require.Len(t, c.Children, 1)
	_, ok = c.Children[0].(*elements.Track)
	assert.True(t, ok)
}

func nestedGroups(n int) string {
	var open, closeTags strings.Builder
	for i := 0; i < n; i++ {
		open.WriteString("GROUP;")
		closeTags.WriteString("END_GROUP;")
	}
	return open.String() + "TRACK,LAYER=1,WIDTH=200;" + closeTags.String()
}

func TestParseGroupRecursionBound(t *testing.T) {
	doc, p := parse(t, nestedGroups(elements.MaxDepth))
	require.Len(t, doc.Children, 1)
	assert.False(t, p.Salvaged())

	p2 := New(token.NewStringSource(nestedGroups(elements.MaxDepth+1)), "doc")
	_, _, err := p2.Document()
	require.Error(t, err)
	assert.Equal(t, errkind.Recursion, errkind.KindOf(err))
}

func TestParseGroupWithChildren(t *testing.T) {
	doc, _ := parse(t, "GROUP;TRACK,LAYER=1,WIDTH=200;TRACK,LAYER=2,WIDTH=300;END_GROUP;")
	require.Len(t, doc.Children, 1)
	g, ok := doc.Children[0].(*elements.Group)
	require.True(t, ok)
	assert.Len(t, g.Children, 2)
}

func TestParseMultipleTopLevelElements(t *testing.T) {
	doc, p := parse(t, "TRACK,LAYER=1,WIDTH=200;CIRCLE,LAYER=1,WIDTH=100,CENTER=0/0,RADIUS=500;")
	require.Len(t, doc.Children, 2)
	assert.False(t, p.Salvaged())
}
