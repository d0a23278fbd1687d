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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ostafen/sniff/internal/index"
	"github.com/ostafen/sniff/internal/scan"
	"github.com/ostafen/sniff/pkg/report"
)

func DefineScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Classify every file in a directory tree",
		Long: `The 'scan' command walks a directory tree, classifies every regular file and writes a report.
The report format is taken from --format, or from the extension of --output when --format is not given.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunScan,
	}

	var format report.Format
	cmd.Flags().IntP("workers", "w", scan.DefaultWorkers, "number of files classified concurrently")
	cmd.Flags().StringSliceP("include", "i", nil, "glob patterns of the files to classify (e.g. '*.bin', 'data/**')")
	cmd.Flags().Bool("hash", false, "compute BLAKE3 digests of classified files")
	cmd.Flags().Bool("inner", false, "also classify the payload of gzip, zstd, lz4 and bzip2 streams")
	cmd.Flags().StringP("output", "o", "", "the path of the report file")
	cmd.Flags().VarP(&format, "format", "f", "report format (table, json, yaml, cbor, xml)")
	cmd.Flags().Bool("watch", false, "keep classifying files created or modified after the scan")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	cmd.Flags().String("index", "", "SQLite database used to skip files unchanged since the previous scan")

	return cmd
}

func RunScan(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	sess, opts, err := parseOptions(cmd, a)
	if err != nil {
		return err
	}
	sess.Root = args[0]

	if path, _ := cmd.Flags().GetString("index"); path != "" {
		idx, err := index.Open(path, a.logger)
		if err != nil {
			return err
		}
		defer idx.Close()
		opts.Index = idx
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return scan.Scan(ctx, a.matcher, sess, opts)
}

func parseOptions(cmd *cobra.Command, a *app) (scan.Session, scan.Options, error) {
	include, _ := cmd.Flags().GetStringSlice("include")
	hash, _ := cmd.Flags().GetBool("hash")
	withInner, _ := cmd.Flags().GetBool("inner")
	output, _ := cmd.Flags().GetString("output")
	watch, _ := cmd.Flags().GetBool("watch")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	var format report.Format
	if v := cmd.Flag("format").Value.String(); v != "" {
		f, err := report.ParseFormat(v)
		if err != nil {
			return scan.Session{}, scan.Options{}, err
		}
		format = f
	}

	sess := scan.Session{
		Output:   output,
		Format:   format,
		Progress: !noProgress && isTerminal(os.Stdout),
		Watch:    watch,
		Console:  cmd.OutOrStdout(),
	}

	opts := scan.Options{
		Workers:   a.cfg.Workers,
		ReadLimit: a.readLimit,
		Include:   include,
		Hash:      hash,
		Inner:     withInner,
		Logger:    a.logger,
	}
	return sess, opts, nil
}
