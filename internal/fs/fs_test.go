package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.bin")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	fi, err := f.Stat()
	require.NoError(t, err)
	require.EqualValues(t, 8, fi.Size())

	buf := make([]byte, 4)
	_, err = io.ReadFull(f, buf)
	require.NoError(t, err)
	require.Equal(t, "\x89PNG", string(buf))

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	n, err := f.ReadAt(buf, 4)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "\r\n\x1a\n", string(buf))
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
