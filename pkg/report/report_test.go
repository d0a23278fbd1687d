package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleReport() (Header, []Entry) {
	hdr := Header{
		OutputVersion: OutputVersion,
		Tool:          "sniff",
		Version:       "test",
		Root:          "/data",
		Host:          Host{Name: "box", OS: "linux", Release: "Debian", Version: "6.1.0", Arch: "amd64"},
		StartTime:     time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}

	entries := []Entry{
		{Path: "/data/a.bin", Size: 2048, Category: "image", MIME: "image/png", Extension: "png", Digest: "abcd"},
		{Path: "/data/b.gz", Size: 10, Category: "archive", MIME: "application/gzip", Extension: "gz",
			Inner: &Inner{Category: "text", MIME: "text/html", Extension: "html"}},
		{Path: "/data/c", Size: 0},
		{Path: "/data/d", Error: "permission denied"},
	}
	return hdr, entries
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatCBOR, FormatXML} {
		t.Run(string(f), func(t *testing.T) {
			hdr, entries := sampleReport()

			var buf bytes.Buffer
			w, err := NewWriter(&buf, f)
			require.NoError(t, err)

			require.NoError(t, w.WriteHeader(hdr))
			for _, e := range entries {
				require.NoError(t, w.WriteEntry(e))
			}
			require.NoError(t, w.Close())

			gotHdr, gotEntries, err := Read(&buf, f)
			require.NoError(t, err)

			require.Equal(t, hdr.Tool, gotHdr.Tool)
			require.Equal(t, hdr.Root, gotHdr.Root)
			require.Equal(t, hdr.Host, gotHdr.Host)
			require.True(t, hdr.StartTime.Equal(gotHdr.StartTime))

			require.Len(t, gotEntries, len(entries))
			for i := range entries {
				entries[i].XMLName = gotEntries[i].XMLName
			}
			require.Equal(t, entries, gotEntries)
			require.True(t, gotEntries[0].Identified())
			require.False(t, gotEntries[2].Identified())
		})
	}
}

func TestTableWriter(t *testing.T) {
	hdr, entries := sampleReport()

	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatTable)
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader(hdr))
	for _, e := range entries {
		require.NoError(t, w.WriteEntry(e))
	}
	require.NoError(t, w.Close())

	out := buf.String()
	require.Contains(t, out, "PATH")
	require.Contains(t, out, "image/png")
	require.Contains(t, out, "2KB")
	require.Contains(t, out, "text/html")
	require.Contains(t, out, "error: permission denied")

	_, _, err = Read(&buf, FormatTable)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat(t *testing.T) {
	var f Format
	require.NoError(t, f.Set("YAML"))
	require.Equal(t, FormatYAML, f)
	require.Equal(t, "yaml", f.String())
	require.ErrorIs(t, f.Set("csv"), ErrUnknownFormat)

	got, ok := FormatFromPath("scan.jsonl")
	require.True(t, ok)
	require.Equal(t, FormatJSON, got)

	_, ok = FormatFromPath("scan.bin")
	require.False(t, ok)

	_, err := NewWriter(&bytes.Buffer{}, Format("csv"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadFile(t *testing.T) {
	hdr, entries := sampleReport()
	path := filepath.Join(t.TempDir(), "scan.yaml")

	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := NewWriter(f, FormatYAML)
	require.NoError(t, err)
	require.NoError(t, w.WriteHeader(hdr))
	require.NoError(t, w.WriteEntry(entries[0]))
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	_, got, err := ReadFile(path, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "png", got[0].Extension)

	_, _, err = ReadFile(filepath.Join(t.TempDir(), "scan.report"), "")
	require.ErrorIs(t, err, ErrUnknownFormat)
}
