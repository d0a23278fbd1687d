package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/fxamacker/cbor/v2"
	"github.com/ostafen/sniff/pkg/util/format"
	"gopkg.in/yaml.v3"
)

// Writer streams a report: one header followed by any number of entries.
type Writer interface {
	WriteHeader(hdr Header) error
	WriteEntry(e Entry) error
	Close() error
}

// record is the unit of the streaming encodings (JSON lines, YAML
// documents, CBOR sequences). Exactly one field is set.
type record struct {
	Header *Header `json:"header,omitempty" yaml:"header,omitempty" cbor:"header,omitempty"`
	Entry  *Entry  `json:"entry,omitempty" yaml:"entry,omitempty" cbor:"entry,omitempty"`
}

type WriterOption func(*writerOptions)

type writerOptions struct {
	styled bool
}

// WithStyle enables terminal styling of table headers.
func WithStyle(styled bool) WriterOption {
	return func(o *writerOptions) {
		o.styled = styled
	}
}

// NewWriter returns a Writer encoding to w in format f. Closing the Writer
// does not close w.
func NewWriter(w io.Writer, f Format, opts ...WriterOption) (Writer, error) {
	var o writerOptions
	for _, opt := range opts {
		opt(&o)
	}

	switch f {
	case FormatTable:
		return newTableWriter(w, o.styled), nil
	case FormatJSON:
		return &encoderWriter{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &encoderWriter{enc: enc, close: enc.Close}, nil
	case FormatCBOR:
		return &encoderWriter{enc: cbor.NewEncoder(w)}, nil
	case FormatXML:
		return newXMLWriter(w), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

type encoder interface {
	Encode(v any) error
}

type encoderWriter struct {
	enc   encoder
	close func() error
}

func (w *encoderWriter) WriteHeader(hdr Header) error {
	return w.enc.Encode(record{Header: &hdr})
}

func (w *encoderWriter) WriteEntry(e Entry) error {
	return w.enc.Encode(record{Entry: &e})
}

func (w *encoderWriter) Close() error {
	if w.close != nil {
		return w.close()
	}
	return nil
}

type xmlWriter struct {
	w   io.Writer
	enc *xml.Encoder
}

func newXMLWriter(w io.Writer) *xmlWriter {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return &xmlWriter{
		w:   w,
		enc: enc,
	}
}

func (w *xmlWriter) WriteHeader(hdr Header) error {
	if _, err := io.WriteString(w.w, xml.Header); err != nil {
		return err
	}

	start := xml.StartElement{
		Name: xml.Name{Local: "sniff"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmloutputversion"}, Value: hdr.OutputVersion},
		},
	}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}
	return w.enc.Encode(hdr)
}

func (w *xmlWriter) WriteEntry(e Entry) error {
	return w.enc.Encode(e)
}

func (w *xmlWriter) Close() error {
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "sniff"}}); err != nil {
		return err
	}
	return w.enc.Flush()
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// tableWriter renders a human readable table. Rows are buffered until Close
// so that columns can be aligned.
type tableWriter struct {
	out    io.Writer
	buf    bytes.Buffer
	tw     *tabwriter.Writer
	styled bool
}

func newTableWriter(w io.Writer, styled bool) *tableWriter {
	t := &tableWriter{out: w, styled: styled}
	t.tw = tabwriter.NewWriter(&t.buf, 0, 0, 2, ' ', 0)
	return t
}

func (t *tableWriter) WriteHeader(hdr Header) error {
	_, err := fmt.Fprintln(t.tw, "PATH\tSIZE\tCATEGORY\tMIME\tEXT\tINNER\tBLAKE3")
	return err
}

func (t *tableWriter) WriteEntry(e Entry) error {
	category, mime, ext := e.Category, e.MIME, e.Extension
	if !e.Identified() {
		category, mime, ext = "-", "unknown", "-"
	}
	if e.Error != "" {
		mime = "error: " + e.Error
	}

	inner := "-"
	if e.Inner != nil {
		inner = e.Inner.MIME
	}

	digest := "-"
	if e.Digest != "" {
		digest = e.Digest
	}

	_, err := fmt.Fprintf(t.tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		e.Path,
		format.FormatBytes(e.Size),
		category,
		mime,
		ext,
		inner,
		digest,
	)
	return err
}

func (t *tableWriter) Close() error {
	if err := t.tw.Flush(); err != nil {
		return err
	}

	sc := bufio.NewScanner(&t.buf)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for first := true; sc.Scan(); first = false {
		line := sc.Text()
		if first && t.styled {
			line = tableHeaderStyle.Render(line)
		}
		if _, err := fmt.Fprintln(t.out, line); err != nil {
			return err
		}
	}
	return sc.Err()
}
