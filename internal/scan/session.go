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
package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ostafen/sniff/internal/env"
	"github.com/ostafen/sniff/pkg/magic"
	"github.com/ostafen/sniff/pkg/report"
	fmtutil "github.com/ostafen/sniff/pkg/util/format"
)

// Session describes a scan started from the command line.
type Session struct {
	Root     string
	Output   string // report path; defaults to report_<session>.<format>
	Format   report.Format
	Progress bool
	Watch    bool
	Console  io.Writer
}

// Scan classifies every file under sess.Root, writes the report and prints
// a summary to sess.Console. In watch mode it then keeps classifying new or
// modified files until ctx is done.
func Scan(ctx context.Context, m *magic.Matcher, sess Session, opts Options) error {
	console := sess.Console
	if console == nil {
		console = os.Stdout
	}

	info, err := os.Stat(sess.Root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", sess.Root)
	}

	s, err := New(m, opts)
	if err != nil {
		return err
	}

	format := sess.Format
	reportFileName := sess.Output
	if reportFileName == "" {
		if format == "" {
			format = report.FormatJSON
		}
		reportFileName = fmt.Sprintf("report_%s.%s", GenSessionID(), format.Extension())
	} else if format == "" {
		f, ok := report.FormatFromPath(reportFileName)
		if !ok {
			f = report.FormatJSON
		}
		format = f
	}

	outFile, err := os.Create(reportFileName)
	if err != nil {
		return err
	}
	defer outFile.Close()

	w, err := report.NewWriter(outFile, format)
	if err != nil {
		return err
	}
	defer w.Close()

	err = w.WriteHeader(report.Header{
		OutputVersion: report.OutputVersion,
		Tool:          env.AppName,
		Version:       env.Version,
		Root:          absPath(sess.Root),
		Host:          report.GetHost(),
		StartTime:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(console, "[INFO] Starting scanning operation...")
	fmt.Fprintf(console, "[INFO] Source: \t%s\n", absPath(sess.Root))
	fmt.Fprintf(console, "[INFO] Workers: \t%d\n", s.opts.Workers)
	fmt.Fprintf(console, "[INFO] Read limit: \t%s\n", fmtutil.FormatBytes(int64(s.opts.ReadLimit)))
	fmt.Fprintf(console, "[INFO] Signatures: \t%d\n", len(m.Types()))

	var progress io.Writer
	if sess.Progress {
		progress = console
	}

	start := time.Now()
	stats, err := s.Run(ctx, sess.Root, w, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(console, "[INFO] Scan completed!\n")
	fmt.Fprintf(console, "[INFO] Files scanned: \t%d\n", stats.Files)
	fmt.Fprintf(console, "[INFO] Identified: \t%d\n", stats.Identified)
	fmt.Fprintf(console, "[INFO] Unreadable: \t%d\n", stats.Failed)
	fmt.Fprintf(console, "[INFO] Sniffed data: \t%s\n", fmtutil.FormatBytes(stats.Sniffed))
	if opts.Index != nil {
		fmt.Fprintf(console, "[INFO] Index hits: \t%d\n", stats.IndexHits)
	}
	fmt.Fprintf(console, "[INFO] Duration: \t%s\n", FormatDurationHMS(time.Since(start)))
	fmt.Fprintf(console, "[INFO] Report saved to: \t%s\n", absPath(reportFileName))

	if !sess.Watch {
		return nil
	}

	fmt.Fprintf(console, "[INFO] Watching %s for changes (Ctrl+C to stop)...\n", absPath(sess.Root))
	return s.Watch(ctx, sess.Root, w)
}

func absPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

// GenSessionID creates a unique name for a scan session.
// The format is "YYYYMMDD_HHMMSS".
func GenSessionID() string {
	return time.Now().Format("20060102_150405")
}

// FormatDurationHMS formats a time.Duration into HH:MM:SS string.
// It handles durations that might be less than an hour or greater than 24 hours.
func FormatDurationHMS(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	totalSeconds := int64(d.Seconds())

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
