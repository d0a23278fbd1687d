package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ostafen/sniff/internal/logger"
	"github.com/ostafen/sniff/pkg/report"
	osutils "github.com/ostafen/sniff/pkg/util/os"
)

func DefineOrganizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <report_file>",
		Short: "Copy identified files into one directory per category",
		Long: `The 'organize' command reads a scan report and copies every identified file to <output-dir>/<category>/<name>.<ext>,
where <ext> is the detected extension. Unidentified files are left out.
The report format is inferred from the file extension unless --format is given.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunOrganize,
	}

	var format report.Format
	cmd.Flags().StringP("output-dir", "o", "", "directory where the organized files will be placed")
	cmd.Flags().VarP(&format, "format", "f", "report format (json, yaml, cbor, xml)")
	return cmd
}

func RunOrganize(cmd *cobra.Command, args []string) error {
	reportPath := args[0]

	_, entries, err := report.ReadFile(reportPath, report.Format(cmd.Flag("format").Value.String()))
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		wdir, err := os.Getwd()
		if err != nil {
			return err
		}

		base := filepath.Base(reportPath)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		outDir = filepath.Join(wdir, name+"-organized")
	}

	if _, err := osutils.EnsureDir(outDir, true); err != nil {
		return err
	}

	log := logger.New(cmd.OutOrStdout(), slog.LevelInfo)
	copied, failed := organize(report.Layout(entries), outDir, log)

	fmt.Fprintf(cmd.OutOrStdout(), "[INFO] Organized %d files into %s\n", copied, outDir)
	if failed > 0 {
		return fmt.Errorf("%d files could not be copied", failed)
	}
	return nil
}

func organize(placements []report.Placement, outDir string, log *slog.Logger) (copied, failed int) {
	for _, p := range placements {
		dst := filepath.Join(outDir, filepath.FromSlash(p.Path()))

		log.Info("copying file", "src", p.Source, "dst", dst)
		if _, err := osutils.CopyFile(p.Source, dst); err != nil {
			log.Error("unable to copy file", "src", p.Source, "err", err)
			failed++
			continue
		}
		copied++
	}
	return copied, failed
}
