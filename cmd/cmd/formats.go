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
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ostafen/sniff/pkg/magic"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func DefineFormatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List all supported file formats",
		Long: `The 'formats' command displays a table of all file types currently known to the detector, in the order they are tried.
Custom types loaded from signature files or plugins are listed first, since they take precedence over the built-in ones.
Each type includes its extension, media type, category and the number of leading bytes needed to recognize it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunFormats,
	}

	cmd.Flags().StringP("category", "c", "", "only list types of the given category")
	return cmd
}

func RunFormats(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var filter *magic.Category
	if name, _ := cmd.Flags().GetString("category"); name != "" {
		c, err := magic.ParseCategory(strings.ToLower(name))
		if err != nil {
			return err
		}
		filter = &c
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXT\tMIME\tCATEGORY\tREAD SIZE\tSTREAM")

	for _, t := range a.matcher.Types() {
		if filter != nil && t.Category() != *filter {
			continue
		}

		readSize := "-"
		if t.ReadSize() > 0 {
			readSize = fmt.Sprint(t.ReadSize())
		}

		stream := "no"
		if t.SupportsReader() {
			stream = "yes"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Extension(),
			t.MIME(),
			t.Category(),
			readSize,
			stream,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	header, rows, _ := strings.Cut(buf.String(), "\n")
	if isTerminal(os.Stdout) {
		header = headerStyle.Render(header)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), header+"\n"+rows)
	return err
}
