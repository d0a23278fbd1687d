package report

import (
	"bufio"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

type decoder interface {
	Decode(v any) error
}

// Read decodes a report written in format f. Tables are not readable.
func Read(r io.Reader, f Format) (Header, []Entry, error) {
	switch f {
	case FormatJSON:
		return readRecords(json.NewDecoder(r))
	case FormatYAML:
		return readRecords(yaml.NewDecoder(r))
	case FormatCBOR:
		return readRecords(cbor.NewDecoder(r))
	case FormatXML:
		return readXML(r)
	}
	return Header{}, nil, fmt.Errorf("%w: %q is not readable", ErrUnknownFormat, f)
}

// ReadFile reads the report at path. The format is inferred from the file
// extension unless f is set.
func ReadFile(path string, f Format) (Header, []Entry, error) {
	if f == "" {
		inferred, ok := FormatFromPath(path)
		if !ok {
			return Header{}, nil, fmt.Errorf("%w: cannot infer format of %s", ErrUnknownFormat, path)
		}
		f = inferred
	}

	file, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer file.Close()

	hdr, entries, err := Read(bufio.NewReader(file), f)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return hdr, entries, nil
}

func readRecords(dec decoder) (Header, []Entry, error) {
	var (
		hdr     Header
		entries []Entry
	)

	for {
		var rec record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return hdr, entries, nil
		}
		if err != nil {
			return hdr, entries, fmt.Errorf("malformed report: %w", err)
		}

		switch {
		case rec.Header != nil:
			hdr = *rec.Header
		case rec.Entry != nil:
			entries = append(entries, *rec.Entry)
		}
	}
}

func readXML(r io.Reader) (Header, []Entry, error) {
	dec := xml.NewDecoder(r)

	var (
		hdr     Header
		entries []Entry
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return hdr, entries, nil
		}
		if err != nil {
			return hdr, entries, fmt.Errorf("malformed report: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "header":
			if err := dec.DecodeElement(&hdr, &start); err != nil {
				return hdr, entries, err
			}
		case "fileobject":
			var e Entry
			if err := dec.DecodeElement(&e, &start); err != nil {
				return hdr, entries, err
			}
			entries = append(entries, e)
		}
	}
}
