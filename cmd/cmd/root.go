package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ostafen/sniff/internal/env"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:           env.AppName,
		Short:         env.AppName + " - file type detection by magic numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "minimum log level (DEBUG, INFO, WARN, ERROR)")
	flags.String("log-file", "", "write logs to the specified file")
	flags.String("signatures", "", "YAML or JSONC file with custom signature definitions")
	flags.StringSlice("plugins", nil, "paths to plugin .so files or directories containing plugins")
	flags.String("read-limit", "", "maximum number of bytes read from each input (e.g. 8KB)")

	rootCmd.AddCommand(
		DefineDetectCommand(),
		DefineFormatsCommand(),
		DefineScanCommand(),
		DefineOrganizeCommand(),
		DefineMountCommand(),
		DefineVersionCommand(),
	)

	return rootCmd.Execute()
}
