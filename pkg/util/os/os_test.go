package os

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	created, err := EnsureDir(dir, true)
	require.NoError(t, err)
	require.True(t, created)

	created, err = EnsureDir(dir, true)
	require.NoError(t, err)
	require.False(t, created)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0644))

	_, err = EnsureDir(dir, true)
	require.Error(t, err)

	_, err = EnsureDir(dir, false)
	require.NoError(t, err)

	_, err = EnsureDir(filepath.Join(dir, "f"), false)
	require.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	dst := filepath.Join(dir, "out", "image", "dst.png")
	n, err := CopyFile(src, dst)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)

	_, err = CopyFile(src, dst)
	require.ErrorIs(t, err, os.ErrExist)
}
