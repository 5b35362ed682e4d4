package diagnostic

import (
	"strings"
	"testing"

	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/stretchr/testify/assert"
)

func TestLogFormatsKindStateOrigin(t *testing.T) {
	var sb strings.Builder
	l := New(&sb, func() string { return "ParsingInput" })

	err := errkind.At(errkind.Syntax, errkind.Origin{Line: 3, Column: 5, Source: "board.lp2"})
	l.Log(err, err.Origin)

	got := sb.String()
	assert.Contains(t, got, "syntax error")
	assert.Contains(t, got, "ParsingInput")
	assert.Contains(t, got, "board.lp2:3:5")
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestCriticalPrefixesMessage(t *testing.T) {
	var sb strings.Builder
	l := New(&sb, func() string { return "Processing" })

	err := errkind.New(errkind.Memory)
	l.Critical(err, errkind.Origin{})

	assert.True(t, strings.HasPrefix(sb.String(), "Critical "))
}

func TestNilStateDefaultsToUnknown(t *testing.T) {
	var sb strings.Builder
	l := New(&sb, nil)
	l.Log(errkind.New(errkind.IO), errkind.Origin{})
	assert.Contains(t, sb.String(), "unknown")
}
