package subprocess

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempPairCleanup(t *testing.T) {
	in, out, cleanup, err := TempPair()
	require.NoError(t, err)
	require.FileExists(t, in)
	require.FileExists(t, out)
	assert.NotEqual(t, in, out)

	cleanup()
	assert.NoFileExists(t, in)
	assert.NoFileExists(t, out)
	// cleanup is idempotent
	cleanup()
}

func TestFilter(t *testing.T) {
	in, out, cleanup, err := TempPair()
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, os.WriteFile(in, []byte("b\na\n"), 0600))
	require.NoError(t, Filter("sort", in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestFilterFailure(t *testing.T) {
	in, out, cleanup, err := TempPair()
	require.NoError(t, err)
	defer cleanup()

	assert.Error(t, Filter("exit 3", in, out))
}
