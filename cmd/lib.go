package cmd

import (
	"fmt"

	"github.com/hfdatalabs/hfdata-cli/config"
	"github.com/hfdatalabs/hfdata-cli/library"
	"github.com/spf13/cobra"
)

// defaultLibraryFile is used when neither --data nor the config file
// names a database.
const defaultLibraryFile = "hf_consumables_library.json"

var (
	libData string
	libJSON bool
)

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Consumables library commands",
	Long: `Search and maintain a flat-file database of printer consumables
(toners, drums) keyed by part number and printer model.

The database is a JSON array of records. Its path is resolved from
--data, then the config file (set with 'hfdata lib use'), then
` + defaultLibraryFile + ` in the current directory. A missing file is
an empty database.

Output:
  default  Human-friendly tables
  --json   Raw JSON results for automation

Examples:
  hfdata lib search --model "Phaser 5500"
  hfdata lib --json search --part 006R01452
  hfdata lib list
  hfdata lib stats`,
}

func init() {
	libCmd.PersistentFlags().StringVar(&libData, "data", "", "Path to the library JSON file")
	libCmd.PersistentFlags().BoolVar(&libJSON, "json", false, "Output raw JSON instead of formatted tables")
	rootCmd.AddCommand(libCmd)
}

func resolveLibraryPath() (string, error) {
	if libData != "" {
		return libData, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	if cfg.LibraryFile != "" {
		return cfg.LibraryFile, nil
	}
	return defaultLibraryFile, nil
}

func openLibrary() (*library.Store, error) {
	path, err := resolveLibraryPath()
	if err != nil {
		return nil, err
	}
	return library.Open(path)
}
