// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
// Package sysinfo describes the machine a scan runs on.
package sysinfo

import (
	"os"
	"runtime"
)

const unknown = "unknown"

type SysInfo struct {
	Hostname string
	Name     string // The name of the operating system (e.g., "linux", "darwin", "windows").
	Release  string // The marketing name of the OS (e.g., "Ubuntu 24.04 LTS", "macOS", "Windows").
	Version  string // The kernel or build version of the OS.
	Arch     string
}

func Stat() SysInfo {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = unknown
	}

	release, version := osInfo()
	return SysInfo{
		Hostname: hostname,
		Name:     runtime.GOOS,
		Release:  orUnknown(release),
		Version:  orUnknown(version),
		Arch:     runtime.GOARCH,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
