// =============================================================================
// Encore Royalty Core - Mappings Command
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EncoreMusictech/encore-live-sub008/internal/config"
	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/mapper"
	"github.com/EncoreMusictech/encore-live-sub008/internal/pipeline"
	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
)

var (
	mappingsSource string
	mappingsSet    []string
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Show or update the column mappings for a revenue source",
	Long: `Displays the column candidates each standard field resolves to for
a revenue source, after built-in defaults are merged with any custom
mappings from the configs directory.

With --set, saves a custom mapping for the source first:

  encore mappings -s BMI --set "WORK TITLE=Title Name,Work Title"`,
	RunE: runMappings,
}

func init() {
	mappingsCmd.Flags().StringVarP(&mappingsSource, "source", "s", "", "revenue source name (required)")
	mappingsCmd.Flags().StringArrayVar(&mappingsSet, "set", nil, "save a custom mapping, formatted FIELD=Column[,Column...]")
	mappingsCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(mappingsCmd)
}

func runMappings(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMainConfig(configPath)
	if err != nil {
		return err
	}

	source := lexicon.ParseSource(mappingsSource)
	if source == lexicon.SourceUnknown {
		return fmt.Errorf("unknown revenue source %q", mappingsSource)
	}

	p, err := pipeline.New(cfg, types.NopLogger{})
	if err != nil {
		return err
	}

	m := p.Mapper()

	if len(mappingsSet) > 0 {
		overrides, err := parseMappingSets(mappingsSet)
		if err != nil {
			return err
		}
		merged := m.SaveMapping(string(source), overrides)
		if err := config.SaveSourceMapping(cfg.ConfigsDir, source, merged); err != nil {
			return err
		}
		fmt.Printf("Saved %d mapping rule(s) for %s\n", len(overrides), source)
	}

	effective := m.EffectiveMapping(string(source), nil)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle(string(source))
	t.AppendHeader(table.Row{"Standard Field", "Column Candidates"})

	for _, field := range lexicon.StandardFields {
		columns, ok := effective[field]
		if !ok {
			continue
		}
		for i, column := range columns {
			if i == 0 {
				t.AppendRow(table.Row{string(field), column})
			} else {
				t.AppendRow(table.Row{"", column})
			}
		}
	}

	t.Render()
	return nil
}

// parseMappingSets parses --set values of the form
// "FIELD=Column[,Column...]" into a field mapping.
func parseMappingSets(sets []string) (mapper.FieldMapping, error) {
	overrides := make(mapper.FieldMapping, len(sets))
	for _, set := range sets {
		name, columnList, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set value %q, expected FIELD=Column[,Column...]", set)
		}
		field, found := lexicon.ParseField(name)
		if !found {
			return nil, fmt.Errorf("unknown standard field %q", strings.TrimSpace(name))
		}
		var columns lexicon.Columns
		for _, column := range strings.Split(columnList, ",") {
			if column = strings.TrimSpace(column); column != "" {
				columns = append(columns, column)
			}
		}
		if len(columns) == 0 {
			return nil, fmt.Errorf("--set value %q names no columns", set)
		}
		overrides[field] = columns
	}
	return overrides, nil
}
