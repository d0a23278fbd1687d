package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	entries := []Entry{
		{Path: "/a/photo.jpg", Size: 10, Category: "image", MIME: "image/jpeg", Extension: "jpg"},
		{Path: "/b/photo.jpeg", Size: 11, Category: "image", MIME: "image/jpeg", Extension: "jpg"},
		{Path: "/c/photo", Size: 12, Category: "image", MIME: "image/jpeg", Extension: "jpg"},
		{Path: "/a/backup.tar.gz", Size: 13, Category: "archive", MIME: "application/gzip", Extension: "gz"},
		{Path: "/a/.hidden", Size: 14, Category: "text", MIME: "text/html", Extension: "html"},
		{Path: "/a/unknown.bin", Size: 15},
		{Path: "/a/broken.png", Error: "permission denied"},
	}

	got := Layout(entries)
	require.Equal(t, []Placement{
		{Category: "image", Name: "photo.jpg", Source: "/a/photo.jpg", Size: 10},
		{Category: "image", Name: "photo_1.jpg", Source: "/b/photo.jpeg", Size: 11},
		{Category: "image", Name: "photo_2.jpg", Source: "/c/photo", Size: 12},
		{Category: "archive", Name: "backup.tar.gz", Source: "/a/backup.tar.gz", Size: 13},
		{Category: "text", Name: ".hidden.html", Source: "/a/.hidden", Size: 14},
	}, got)

	require.Equal(t, "image/photo_1.jpg", got[1].Path())
}
