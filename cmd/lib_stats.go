package cmd

import (
	"os"

	"github.com/hfdatalabs/hfdata-cli/library"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	Long: `Summarize the library: totals, unique models, regions, chip types,
yield min/avg/max, and per-color and per-type counts.

Examples:
  hfdata lib stats
  hfdata lib --json stats`,
	Args: cobra.NoArgs,
	RunE: runLibStats,
}

func init() {
	libCmd.AddCommand(statsCmd)
}

func runLibStats(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	store, err := openLibrary()
	if err != nil {
		return err
	}
	st := library.ComputeStats(store.Items())

	if libJSON {
		return jsonPrint(st)
	}
	library.RenderStats(os.Stdout, st)
	return nil
}
