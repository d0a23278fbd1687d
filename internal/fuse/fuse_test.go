//go:build linux
// +build linux

package fuse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bazil.org/fuse"
	"github.com/stretchr/testify/require"

	"github.com/ostafen/sniff/pkg/report"
)

func TestCategoryFS(t *testing.T) {
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "scan.bin")
	data := []byte("\x89PNG\r\n\x1a\npayload")
	require.NoError(t, os.WriteFile(src, data, 0644))

	cfs := NewCategoryFS(report.Layout([]report.Entry{
		{Path: src, Size: int64(len(data)), Category: "image", MIME: "image/png", Extension: "png"},
		{Path: "/x/a.pdf", Size: 4, Category: "archive", MIME: "application/pdf", Extension: "pdf"},
	}))

	node, err := cfs.Root()
	require.NoError(t, err)
	root := node.(*RootDir)

	dirs, err := root.ReadDirAll(ctx)
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	require.Equal(t, "archive", dirs[0].Name)
	require.Equal(t, "image", dirs[1].Name)
	require.Equal(t, fuse.DT_Dir, dirs[1].Type)

	_, err = root.Lookup(ctx, "video")
	require.Equal(t, fuse.ENOENT, err)

	node, err = root.Lookup(ctx, "image")
	require.NoError(t, err)
	images := node.(*CategoryDir)

	files, err := images.ReadDirAll(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "scan.png", files[0].Name)

	node, err = images.Lookup(ctx, "scan.png")
	require.NoError(t, err)
	file := node.(*File)

	var attr fuse.Attr
	require.NoError(t, file.Attr(ctx, &attr))
	require.EqualValues(t, len(data), attr.Size)

	var resp fuse.ReadResponse
	require.NoError(t, file.Read(ctx, &fuse.ReadRequest{Offset: 1, Size: 3}, &resp))
	require.Equal(t, "PNG", string(resp.Data))

	require.NoError(t, file.Read(ctx, &fuse.ReadRequest{Offset: 11, Size: 100}, &resp))
	require.Equal(t, "load", string(resp.Data))

	require.NoError(t, file.Read(ctx, &fuse.ReadRequest{Offset: 100, Size: 10}, &resp))
	require.Empty(t, resp.Data)
}
