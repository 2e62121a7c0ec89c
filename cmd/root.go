// =============================================================================
// Encore Royalty Core - Root Command
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "encore",
	Short: "Royalty statement normalization and CWR export",
	Long: `Encore processes royalty statements from performing rights societies
and digital platforms (BMI, ASCAP, YouTube, SoundExchange, HFA, Kobalt,
The MLC), maps each source's columns onto a standard field set, and
exports registered works as CWR files.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to main configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
