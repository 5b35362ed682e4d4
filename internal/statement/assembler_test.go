package statement

import (
	"errors"
	"testing"

	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssembler(input string) *Assembler {
	return NewAssembler(token.NewTokenizer(token.NewStringSource(input), "doc"))
}

func TestAssemblerNameOnly(t *testing.T) {
	a := newAssembler("TRACK;")
	stmt, end, err := a.Next(false)
	require.NoError(t, err)
	assert.True(t, end)
	assert.Equal(t, "TRACK", stmt.Name)
	assert.True(t, stmt.Flags.Has(FlagFirst))
	assert.False(t, stmt.Flags.Has(FlagHasValue))
	assert.False(t, stmt.Flags.Has(FlagHasIndex))
}

func TestAssemblerIndexAndValue(t *testing.T) {
	a := newAssembler("P0=100/200,P1=300/400;")

	stmt, end, err := a.Next(false)
	require.NoError(t, err)
	assert.False(t, end)
	assert.Equal(t, "P", stmt.Name)
	assert.True(t, stmt.Flags.Has(FlagFirst))
	assert.True(t, stmt.Flags.Has(FlagHasIndex))
	assert.Equal(t, int32(0), stmt.Index)
	require.Equal(t, ValueTuple, stmt.ValueKind)
	assert.Equal(t, int32(100), stmt.Number)
	assert.Equal(t, int32(200), stmt.TupleY)

	stmt, end, err = a.Next(false)
	require.NoError(t, err)
	assert.True(t, end)
	assert.False(t, stmt.Flags.Has(FlagFirst))
	assert.Equal(t, int32(1), stmt.Index)
	assert.Equal(t, int32(300), stmt.Number)
	assert.Equal(t, int32(400), stmt.TupleY)
}

func TestAssemblerWordValue(t *testing.T) {
	a := newAssembler("LOCKED=TRUE;")
	stmt, end, err := a.Next(false)
	require.NoError(t, err)
	assert.True(t, end)
	require.Equal(t, ValueWord, stmt.ValueKind)
	assert.Equal(t, "TRUE", stmt.Word)
}

func TestAssemblerStringValue(t *testing.T) {
	a := newAssembler("TEXT=|hello world|;")
	stmt, end, err := a.Next(false)
	require.NoError(t, err)
	assert.True(t, end)
	require.Equal(t, ValueString, stmt.ValueKind)
	assert.Equal(t, "hello world", stmt.Str)
}

func TestAssemblerMultipleElements(t *testing.T) {
	a := newAssembler("TRACK;PAD;")

	stmt, end, err := a.Next(false)
	require.NoError(t, err)
	assert.True(t, end)
	assert.Equal(t, "TRACK", stmt.Name)
	assert.True(t, stmt.Flags.Has(FlagFirst))

	stmt, end, err = a.Next(false)
	require.NoError(t, err)
	assert.True(t, end)
	assert.Equal(t, "PAD", stmt.Name)
	assert.True(t, stmt.Flags.Has(FlagFirst))
}

func TestAssemblerSyntaxErrorThenSync(t *testing.T) {
	a := newAssembler("TRACK,1BADSTART=1;PAD;")

	_, _, err := a.Next(false)
	require.NoError(t, err)

	_, _, err = a.Next(false)
	require.Error(t, err)
	var e *errkind.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errkind.Syntax, e.Kind)

	stmt, end, err := a.Next(true)
	require.NoError(t, err)
	assert.True(t, end)
	assert.Equal(t, "PAD", stmt.Name)
	assert.True(t, stmt.Flags.Has(FlagFirst))
}

func TestAssemblerEOFAtStreamEnd(t *testing.T) {
	a := newAssembler("TRACK;")
	_, _, err := a.Next(false)
	require.NoError(t, err)

	_, _, err = a.Next(false)
	require.Error(t, err)
	var e *errkind.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errkind.EOF, e.Kind)
}
