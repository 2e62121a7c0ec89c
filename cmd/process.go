// =============================================================================
// Encore Royalty Core - Process Command
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EncoreMusictech/encore-live-sub008/internal/config"
	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/pipeline"
)

var (
	processFile   string
	processSource string
	processDryRun bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Normalize royalty statements from the input directory",
	Long: `Parses each statement file in the input directory, detects its
revenue source, maps its columns onto the standard field set and writes a
normalized workbook to the output directory. Processed inputs are moved
to the archive.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processFile, "file", "f", "", "process a single statement file instead of the input directory")
	processCmd.Flags().StringVarP(&processSource, "source", "s", "", "force the revenue source instead of detecting it")
	processCmd.Flags().BoolVar(&processDryRun, "dry-run", false, "parse and map without writing or archiving")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMainConfig(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "DEBUG"
	}
	logger := pipeline.NewLogger(cfg.LogLevel)

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}

	opts := pipeline.Options{DryRun: processDryRun}
	if processSource != "" {
		opts.SourceOverride = lexicon.ParseSource(processSource)
		if opts.SourceOverride == lexicon.SourceUnknown {
			return fmt.Errorf("unknown revenue source %q", processSource)
		}
	}

	var results []pipeline.Result
	if processFile != "" {
		results = []pipeline.Result{p.ProcessFile(processFile, opts)}
	} else {
		results, err = p.Run(opts)
		if err != nil {
			return err
		}
	}

	printSummary(results)

	for _, result := range results {
		if result.Error != nil {
			return fmt.Errorf("one or more statements failed")
		}
	}
	return nil
}

// printSummary renders a per-file results table.
func printSummary(results []pipeline.Result) {
	if len(results) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Source", "Rows", "Mapped", "Unmapped Cols", "Errors", "Status"})

	for _, r := range results {
		status := "OK"
		source := string(r.Source)
		if source == "" {
			source = "unknown"
		}
		if r.Error != nil {
			status = "FAILED"
		}
		t.AppendRow(table.Row{
			r.FilePath,
			source,
			r.Stats.RowsProcessed,
			r.Stats.RecordsMapped,
			r.Stats.UnmappedColumns,
			r.Stats.ValidationErrors,
			status,
		})
	}

	t.Render()
}
