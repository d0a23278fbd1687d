//go:build !linux
// +build !linux

package fuse

import (
	"fmt"

	"github.com/ostafen/sniff/pkg/report"
)

func Mount(mountpoint string, placements []report.Placement) error {
	return fmt.Errorf("FUSE mount is only supported on Linux")
}
