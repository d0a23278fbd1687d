package sysinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStat(t *testing.T) {
	info := Stat()
	require.Equal(t, runtime.GOOS, info.Name)
	require.Equal(t, runtime.GOARCH, info.Arch)
	require.NotEmpty(t, info.Hostname)
	require.NotEmpty(t, info.Release)
	require.NotEmpty(t, info.Version)
}
