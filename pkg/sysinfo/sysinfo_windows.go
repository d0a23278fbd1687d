package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func osInfo() (string, string) {
	v := windows.RtlGetVersion()
	return "Windows", fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)
}
