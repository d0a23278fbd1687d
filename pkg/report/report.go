package report

import (
	"encoding/xml"
	"time"

	"github.com/ostafen/sniff/pkg/sysinfo"
)

const OutputVersion = "1.0"

// Header describes the run that produced a report.
type Header struct {
	XMLName       xml.Name  `xml:"header" json:"-" yaml:"-" cbor:"-"`
	OutputVersion string    `xml:"outputversion,attr" json:"output_version" yaml:"output_version" cbor:"output_version"`
	Tool          string    `xml:"tool" json:"tool" yaml:"tool" cbor:"tool"`
	Version       string    `xml:"version" json:"version" yaml:"version" cbor:"version"`
	Root          string    `xml:"root" json:"root" yaml:"root" cbor:"root"`
	Host          Host      `xml:"execution_environment" json:"host" yaml:"host" cbor:"host"`
	StartTime     time.Time `xml:"start_time" json:"start_time" yaml:"start_time" cbor:"start_time"`
}

type Host struct {
	Name    string `xml:"host" json:"name" yaml:"name" cbor:"name"`
	OS      string `xml:"os_sysname" json:"os" yaml:"os" cbor:"os"`
	Release string `xml:"os_release" json:"release" yaml:"release" cbor:"release"`
	Version string `xml:"os_version" json:"version" yaml:"version" cbor:"version"`
	Arch    string `xml:"arch" json:"arch" yaml:"arch" cbor:"arch"`
}

// Entry is the classification of a single file.
type Entry struct {
	XMLName   xml.Name `xml:"fileobject" json:"-" yaml:"-" cbor:"-"`
	Path      string   `xml:"filename" json:"path" yaml:"path" cbor:"path"`
	Size      int64    `xml:"filesize" json:"size" yaml:"size" cbor:"size"`
	Category  string   `xml:"category,omitempty" json:"category,omitempty" yaml:"category,omitempty" cbor:"category,omitempty"`
	MIME      string   `xml:"mime,omitempty" json:"mime,omitempty" yaml:"mime,omitempty" cbor:"mime,omitempty"`
	Extension string   `xml:"extension,omitempty" json:"extension,omitempty" yaml:"extension,omitempty" cbor:"extension,omitempty"`
	Inner     *Inner   `xml:"inner,omitempty" json:"inner,omitempty" yaml:"inner,omitempty" cbor:"inner,omitempty"`
	Digest    string   `xml:"hashdigest,omitempty" json:"blake3,omitempty" yaml:"blake3,omitempty" cbor:"blake3,omitempty"`
	Error     string   `xml:"error,omitempty" json:"error,omitempty" yaml:"error,omitempty" cbor:"error,omitempty"`
}

// Inner is the type of the payload of a compressed file.
type Inner struct {
	Category  string `xml:"category" json:"category" yaml:"category" cbor:"category"`
	MIME      string `xml:"mime" json:"mime" yaml:"mime" cbor:"mime"`
	Extension string `xml:"extension" json:"extension" yaml:"extension" cbor:"extension"`
}

func (e Entry) Identified() bool {
	return e.MIME != ""
}

// GetHost describes the machine running the scan.
func GetHost() Host {
	info := sysinfo.Stat()
	return Host{
		Name:    info.Hostname,
		OS:      info.Name,
		Release: info.Release,
		Version: info.Version,
		Arch:    info.Arch,
	}
}
