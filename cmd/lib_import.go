package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hfdatalabs/hfdata-cli/library"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file.tsv]",
	Short: "Import tab-separated records",
	Long: `Append tab-separated records to the library, one per line, reading
from the file argument or stdin.

Field order per line:
  part_number  color  printer_model  [type  yield  region  metered  iot  chip]

The first three fields are required; lines with fewer are skipped and
counted.

Examples:
  hfdata lib import parts.tsv
  pbpaste | hfdata lib import`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLibImport,
}

func init() {
	libCmd.AddCommand(importCmd)
}

func runLibImport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	items, skipped, err := library.ParseTSV(r)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no importable records found (%d line(s) skipped)", skipped)
	}

	store, err := openLibrary()
	if err != nil {
		return err
	}
	if err := store.Append(items...); err != nil {
		return err
	}
	fmt.Printf("Imported %d record(s)", len(items))
	if skipped > 0 {
		fmt.Printf(", skipped %d line(s)", skipped)
	}
	fmt.Printf(" — %d item(s) in %s\n", store.Len(), store.Path())
	return nil
}
