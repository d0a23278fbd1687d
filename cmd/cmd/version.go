package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ostafen/sniff/internal/env"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Print version information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			PrintLogo(cmd.OutOrStdout())
		},
	}
}

func PrintLogo(w io.Writer) {
	fmt.Fprintln(w, "           _  __  __ ")
	fmt.Fprintln(w, " ___ _ __ (_)/ _|/ _|")
	fmt.Fprintln(w, "/ __| '_ \\| | |_| |_ ")
	fmt.Fprintln(w, "\\__ \\ | | | |  _|  _|")
	fmt.Fprintln(w, "|___/_| |_|_|_| |_|  ")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "File type detection by magic numbers")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Version:   %s\n", env.Version)
	fmt.Fprintf(w, "Commit:    %s\n", env.CommitHash)
	fmt.Fprintf(w, "Build Time: %s\n", env.BuildTime)
}
