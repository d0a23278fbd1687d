//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package sysinfo

func osInfo() (string, string) {
	return "", ""
}
