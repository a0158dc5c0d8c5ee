package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hfdatalabs/hfdata-cli/config"
	"github.com/hfdatalabs/hfdata-cli/library"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List printer models in the library",
	Long: `List every printer model in the library with item, toner, and drum
counts, unique part count, and a sample of colors.

Output is paginated; the page size comes from the config file
(default ` + fmt.Sprint(config.DefaultPageSize) + `). When stdin is a terminal the command
prompts between pages; otherwise all pages print at once.

Examples:
  hfdata lib list
  hfdata lib --json list`,
	Args: cobra.NoArgs,
	RunE: runLibList,
}

func init() {
	libCmd.AddCommand(listCmd)
}

func runLibList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	store, err := openLibrary()
	if err != nil {
		return err
	}
	overviews := library.Overview(store.Items())

	if libJSON {
		if overviews == nil {
			overviews = []library.ModelOverview{}
		}
		return jsonPrint(overviews)
	}

	if len(overviews) == 0 {
		fmt.Println("Library is empty.")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	pageSize := cfg.EffectivePageSize()
	totalPages := (len(overviews) + pageSize - 1) / pageSize

	fmt.Printf("%d model(s), %d item(s) total\n", len(overviews), store.Len())

	reader := bufio.NewReader(os.Stdin)
	for page := 0; page < totalPages; page++ {
		start := page * pageSize
		end := start + pageSize
		if end > len(overviews) {
			end = len(overviews)
		}
		library.RenderOverviewPage(os.Stdout, overviews[start:end], page+1, totalPages)

		if page+1 < totalPages && stdinIsTerminal() {
			fmt.Print("\nPress Enter for next page (q to quit): ")
			line, err := reader.ReadString('\n')
			if err != nil {
				break
			}
			if strings.TrimSpace(line) == "q" {
				break
			}
		}
	}
	return nil
}
