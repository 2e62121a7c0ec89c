// =============================================================================
// Encore Royalty Core - CWR Export Command
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/EncoreMusictech/encore-live-sub008/internal/config"
	"github.com/EncoreMusictech/encore-live-sub008/internal/cwr"
)

var (
	exportWorksPath  string
	exportOutPath    string
	exportSenderID   string
	exportSenderName string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate a CWR registration file from a works catalog",
	Long: `Reads a YAML works catalog (titles, writers, publishers, recordings)
and generates a CWR 2.1 work registration file suitable for submission to
collection societies.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportWorksPath, "works", "w", "", "path to the works catalog YAML file (required)")
	exportCmd.Flags().StringVarP(&exportOutPath, "out", "o", "", "output file path (default: output dir, export_<date>.cwr)")
	exportCmd.Flags().StringVar(&exportSenderID, "sender-id", "", "CWR sender IPI number")
	exportCmd.Flags().StringVar(&exportSenderName, "sender-name", "", "CWR sender name")
	exportCmd.MarkFlagRequired("works")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMainConfig(configPath)
	if err != nil {
		return err
	}

	works, err := cwr.LoadWorks(exportWorksPath)
	if err != nil {
		return err
	}

	header := cwr.DefaultHeaderConfig()
	if exportSenderID != "" {
		header.SenderID = exportSenderID
	}
	if exportSenderName != "" {
		header.SenderName = exportSenderName
	}

	content := cwr.GenerateCWRFile(works, header)

	outPath := exportOutPath
	if outPath == "" {
		name := fmt.Sprintf("export_%s.cwr", time.Now().Format("2006-01-02"))
		outPath = filepath.Join(cfg.OutputDir, name)
	}

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write CWR file: %w", err)
	}

	fmt.Printf("Exported %d work(s) to %s\n", len(works), outPath)
	return nil
}
