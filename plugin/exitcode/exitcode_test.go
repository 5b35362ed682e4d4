package exitcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForOperationValid(t *testing.T) {
	code, err := ForOperation(AddAbsolute)
	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestForOperationInvalid(t *testing.T) {
	_, err := ForOperation(Operation(5))
	assert.Error(t, err)
}

func TestForLibraryFailureTagsState(t *testing.T) {
	code, err := ForLibraryFailure(2)
	require.NoError(t, err)
	assert.Equal(t, 130, code)
}

func TestForLibraryFailureOutOfRange(t *testing.T) {
	_, err := ForLibraryFailure(16)
	assert.Error(t, err)
	_, err = ForLibraryFailure(-1)
	assert.Error(t, err)
}

func TestForPluginFailureRange(t *testing.T) {
	code, err := ForPluginFailure(144)
	require.NoError(t, err)
	assert.Equal(t, 144, code)

	_, err = ForPluginFailure(143)
	assert.Error(t, err)

	_, err = ForPluginFailure(256)
	assert.Error(t, err)
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "replace absolute", ReplaceAbsolute.String())
	assert.Equal(t, "unknown", Operation(99).String())
}
