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
package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ostafen/sniff/internal/fs"
	"github.com/ostafen/sniff/internal/inner"
	"github.com/ostafen/sniff/pkg/magic"
	"github.com/ostafen/sniff/pkg/reader"
	"github.com/ostafen/sniff/pkg/report"
)

const stdinPath = "-"

func DefineDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <path|-> ...",
		Short: "Detect the type of one or more files",
		Long: `The 'detect' command identifies each input by its leading bytes and prints its media type, extension and category.
Use '-' to read from standard input.
The exit status is 0 when every input is identified, 1 when some input has an unknown type and 2 when some input could not be read.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunDetect,
	}

	format := report.FormatTable
	cmd.Flags().Bool("stream", false, "classify through the streaming path instead of reading a prefix")
	cmd.Flags().Bool("inner", false, "also classify the payload of gzip, zstd, lz4 and bzip2 streams")
	cmd.Flags().VarP(&format, "format", "f", "output format (table, json, yaml, cbor, xml)")
	return cmd
}

func RunDetect(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	stream, _ := cmd.Flags().GetBool("stream")
	withInner, _ := cmd.Flags().GetBool("inner")

	format, err := report.ParseFormat(cmd.Flag("format").Value.String())
	if err != nil {
		return err
	}

	w, err := report.NewWriter(cmd.OutOrStdout(), format, report.WithStyle(isTerminal(os.Stdout)))
	if err != nil {
		return err
	}
	if err := w.WriteHeader(report.Header{}); err != nil {
		return err
	}

	d := detector{app: a, stream: stream, inner: withInner}

	code := 0
	for _, path := range args {
		entry := d.detect(path, cmd.InOrStdin())
		switch {
		case entry.Error != "":
			code = ExitUnreadable
		case !entry.Identified() && code == 0:
			code = ExitUnknown
		}

		if err := w.WriteEntry(entry); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

type detector struct {
	*app
	stream bool
	inner  bool
}

func (d *detector) detect(path string, stdin io.Reader) report.Entry {
	entry := report.Entry{Path: path}

	var (
		r   io.ReadSeeker
		typ magic.Type
		ok  bool
		err error
	)
	if path == stdinPath {
		rw := reader.NewRewinder(stdin, d.window())
		r = rw
		typ, ok, err = d.matcher.ClassifyReader(rw)
	} else {
		var f fs.File
		f, err = fs.Open(path)
		if err == nil {
			defer f.Close()
			r = f
			typ, ok, err = d.classifyFile(f, &entry)
		}
	}

	if err != nil {
		d.logger.Debug("unable to classify input", "path", path, "err", err)
		entry.Error = err.Error()
		return entry
	}
	if !ok {
		return entry
	}

	entry.Category = typ.Category().String()
	entry.MIME = typ.MIME()
	entry.Extension = typ.Extension()

	if d.inner && inner.Supported(typ) {
		entry.Inner = d.classifyInner(r, typ)
	}
	return entry
}

// window is the number of leading bytes of a non-seekable input that must be
// kept so that every type can be tried from the start.
func (d *detector) window() int {
	limit := d.readLimit
	for _, t := range d.matcher.Types() {
		limit = max(limit, t.ReadSize())
	}
	return limit
}

func (d *detector) classifyFile(f fs.File, entry *report.Entry) (magic.Type, bool, error) {
	info, err := f.Stat()
	if err != nil {
		return magic.Type{}, false, err
	}
	if info.IsDir() {
		return magic.Type{}, false, errors.New("is a directory")
	}
	entry.Size = info.Size()

	if d.stream {
		return d.matcher.ClassifyReader(f)
	}

	prefix, err := magic.ReadPrefix(f, d.readLimit)
	if err != nil {
		return magic.Type{}, false, err
	}
	typ, ok := d.matcher.Classify(prefix)
	return typ, ok, nil
}

func (d *detector) classifyInner(r io.ReadSeeker, outer magic.Type) *report.Inner {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		d.logger.Debug("unable to rewind input", "err", err)
		return nil
	}

	typ, ok, err := inner.Classify(d.matcher, outer, r, d.readLimit)
	if err != nil {
		d.logger.Debug("unable to inspect payload", "type", outer.Extension(), "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &report.Inner{
		Category:  typ.Category().String(),
		MIME:      typ.MIME(),
		Extension: typ.Extension(),
	}
}
