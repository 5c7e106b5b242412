//go:build integration

package fs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_IsDir(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-isdir-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	isDir, err := fs.IsDir(tmpDir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	tmpFile, err := os.CreateTemp(tmpDir, "file-*")
	require.NoError(t, err)

	isDir, err = fs.IsDir(tmpFile.Name())
	assert.NoError(t, err)
	assert.False(t, isDir)
}
