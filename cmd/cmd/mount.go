package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ostafen/sniff/internal/fuse"
	"github.com/ostafen/sniff/pkg/report"
)

func DefineMountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount <report_file>",
		Short: "Mount a read-only view of a scan report grouped by category",
		Long: `The 'mount' command exposes the identified files of a scan report through FUSE.
The mounted tree has one directory per category, each holding the files of that category renamed with their detected extension.
Reads are served from the original files. Only Linux is supported.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunMount,
	}

	var format report.Format
	cmd.Flags().StringP("mountpoint", "m", "", "Absolute path to the directory where the filesystem will be mounted. If not specified, a default will be generated.")
	cmd.Flags().VarP(&format, "format", "f", "report format (json, yaml, cbor, xml)")
	return cmd
}

func RunMount(cmd *cobra.Command, args []string) error {
	_, entries, err := report.ReadFile(args[0], report.Format(cmd.Flag("format").Value.String()))
	if err != nil {
		return err
	}

	mountpoint, _ := cmd.Flags().GetString("mountpoint")
	if mountpoint == "" {
		mountpoint = getMountpoint(args[0])
	}
	return fuse.Mount(mountpoint, report.Layout(entries))
}

// getMountpoint generates a mountpoint name from a report file name by stripping the extension.
// If the extension is empty, "_mnt" is added.
func getMountpoint(reportFileName string) string {
	baseName := filepath.Base(reportFileName)
	ext := filepath.Ext(baseName)
	baseName = strings.TrimSuffix(baseName, ext)
	mountpoint := baseName
	if ext == "" {
		mountpoint += "_mnt"
	}
	return mountpoint
}
