package sysinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOSRelease(t *testing.T) {
	require.Equal(t, "Ubuntu 24.04 LTS", parseOSRelease(strings.NewReader(`NAME="Ubuntu"
VERSION="24.04 LTS (Noble Numbat)"
PRETTY_NAME="Ubuntu 24.04 LTS"
`)))

	require.Equal(t, "Alpine 3.20", parseOSRelease(strings.NewReader("NAME=Alpine\nVERSION=3.20\n")))
	require.Empty(t, parseOSRelease(strings.NewReader("garbage")))
}
