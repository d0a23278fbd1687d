package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// Format selects the encoding of a report.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"
	FormatXML   Format = "xml"
)

var ErrUnknownFormat = errors.New("unknown report format")

var _ pflag.Value = (*Format)(nil)

var formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCBOR, FormatXML}

func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath guesses the format from the extension of path.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".ndjson":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".cbor":
		return FormatCBOR, true
	case ".xml", ".dfxml":
		return FormatXML, true
	case ".txt":
		return FormatTable, true
	}
	return "", false
}

// Set implements the flag value interface.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) String() string { return string(*f) }

func (f *Format) Type() string { return "format" }

// Extension is the file extension used for reports in format f.
func (f Format) Extension() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}
