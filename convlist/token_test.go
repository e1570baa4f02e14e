package convlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TOKEN")
	require.NoError(t, os.WriteFile(path, []byte("  xoxp-123\n"), 0600))

	token, err := ReadTokenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xoxp-123", token)
}

func TestReadTokenFileErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "EMPTY")
	require.NoError(t, os.WriteFile(empty, []byte(" \n"), 0600))

	for _, path := range []string{filepath.Join(dir, "missing"), empty, dir} {
		_, err := ReadTokenFile(path)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr, path)
		assert.Equal(t, path, cfgErr.Path)
		assert.False(t, IsTransportError(err))
	}
}
