package sysinfo

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"
)

// osInfo runs sw_vers and parses its output.
func osInfo() (string, string) {
	output, err := exec.Command("sw_vers").Output()
	if err != nil {
		return "macOS", ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	var productName, productVersion string
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "ProductName:"); ok {
			productName = strings.TrimSpace(v)
		}
		if v, ok := strings.CutPrefix(line, "ProductVersion:"); ok {
			productVersion = strings.TrimSpace(v)
		}
	}
	return productName, productVersion
}
