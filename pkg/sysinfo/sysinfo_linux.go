package sysinfo

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func osInfo() (string, string) {
	var release string
	if f, err := os.Open("/etc/os-release"); err == nil {
		release = parseOSRelease(f)
		f.Close()
	}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return release, ""
	}
	return release, unix.ByteSliceToString(uts.Release[:])
}

// parseOSRelease returns PRETTY_NAME, falling back to NAME and VERSION.
func parseOSRelease(r io.Reader) string {
	var pretty, name, version string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)

		switch key {
		case "PRETTY_NAME":
			pretty = value
		case "NAME":
			name = value
		case "VERSION":
			version = value
		}
	}

	if pretty != "" {
		return pretty
	}
	return strings.TrimSpace(name + " " + version)
}
