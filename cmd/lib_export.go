package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.json>",
	Short: "Export the library to another JSON file",
	Long: `Write the whole library to another JSON file, leaving the database
itself untouched.

Example:
  hfdata lib export backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLibExport,
}

func init() {
	libCmd.AddCommand(exportCmd)
}

func runLibExport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	store, err := openLibrary()
	if err != nil {
		return err
	}
	if err := store.ExportTo(args[0]); err != nil {
		return err
	}
	fmt.Printf("Exported %d item(s) to %s\n", store.Len(), args[0])
	return nil
}
