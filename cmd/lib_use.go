package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/hfdatalabs/hfdata-cli/config"
	"github.com/hfdatalabs/hfdata-cli/library"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <file.json>",
	Short: "Set the default library file",
	Long: `Persist the default library path to the config file so later lib
commands use it without --data. The file is opened first, so a broken
database is rejected before it becomes the default.

Example:
  hfdata lib use ~/data/consumables.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLibUse,
}

func init() {
	libCmd.AddCommand(useCmd)
}

func runLibUse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	store, err := library.Open(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.LibraryFile = path
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Default library set to %s (%d item(s))\n", path, store.Len())
	return nil
}
