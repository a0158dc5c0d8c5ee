package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hfdatalabs/hfdata-cli/library"
	"github.com/spf13/cobra"
)

var searchFlags = map[library.Field]*string{
	library.ByModel:  new(string),
	library.ByPart:   new(string),
	library.ByColor:  new(string),
	library.ByIOT:    new(string),
	library.ByRegion: new(string),
	library.ByType:   new(string),
	library.ByYield:  new(string),
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the library by one field",
	Long: `Search the consumables library. Exactly one search flag is required.

Matching:
  --model, --iot, --region   case-insensitive substring
  --part, --color, --type    case-insensitive exact
  --yield                    numeric: N, >N, <N, or N-M

Part-number searches print one table per item; every other search
clusters results by printer model with toner/drum sections and a
per-model summary.

Examples:
  hfdata lib search --model "Phaser 5500"
  hfdata lib search --part 006R01452
  hfdata lib search --color cyan
  hfdata lib search --yield ">20000"
  hfdata lib search --yield 5000-30000`,
	RunE: runLibSearch,
}

func init() {
	searchCmd.Flags().StringVar(searchFlags[library.ByModel], "model", "", "Printer model (substring)")
	searchCmd.Flags().StringVar(searchFlags[library.ByPart], "part", "", "Part number (exact)")
	searchCmd.Flags().StringVar(searchFlags[library.ByColor], "color", "", "Color (exact)")
	searchCmd.Flags().StringVar(searchFlags[library.ByIOT], "iot", "", "IOT codename (substring)")
	searchCmd.Flags().StringVar(searchFlags[library.ByRegion], "region", "", "Region/zone (substring)")
	searchCmd.Flags().StringVar(searchFlags[library.ByType], "type", "", "Consumable type (exact)")
	searchCmd.Flags().StringVar(searchFlags[library.ByYield], "yield", "", "Yield: N, >N, <N, or N-M")
	libCmd.AddCommand(searchCmd)
}

func runLibSearch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var query *library.Query
	for field, val := range searchFlags {
		if *val == "" {
			continue
		}
		if query != nil {
			return fmt.Errorf("exactly one search flag is required")
		}
		query = &library.Query{Field: field, Text: *val}
	}
	if query == nil {
		return fmt.Errorf("exactly one search flag is required (see 'hfdata lib search --help')")
	}

	store, err := openLibrary()
	if err != nil {
		return err
	}
	slog.Debug("searching library", "path", store.Path(), "field", string(query.Field), "text", query.Text)

	results, err := library.Search(store.Items(), *query)
	if err != nil {
		return err
	}

	if libJSON {
		if results == nil {
			results = []library.Item{}
		}
		return jsonPrint(results)
	}

	color := stdoutIsTerminal()
	if query.Field == library.ByPart {
		library.RenderSimple(os.Stdout, results, color)
	} else {
		library.RenderClustered(os.Stdout, results, color)
	}
	return nil
}
