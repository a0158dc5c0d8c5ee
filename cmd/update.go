package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hfdatalabs/hfdata-cli/fieldset"
	"github.com/spf13/cobra"
)

var (
	updateMatch   string
	updateField   string
	updateSet     []string
	updateOutput  string
	updateInPlace bool
)

var updateCmd = &cobra.Command{
	Use:   "update <file.json> [file.json ...]",
	Short: "Batch-update fields on matching records",
	Long: `Set field values on every record whose match field exactly equals
--match. Only fields a matching record already has are overwritten;
non-matching records and unknown fields pass through untouched. A
single object and an array of objects both keep their shape.

With one input file the result goes to --output (which may equal the
input) or back to the input with --in-place; the default is
<base>_updated.<ext>. With several files each is written to
<base>_updated.<ext>; failures are reported per file and processing
continues.

Examples:
  hfdata update parts.json --match "Phaser 5500" --set yield=24000
  hfdata update parts.json --match 006R01452 --field part_number \
    --set region_zone=DMO-E --set chip_type=R
  hfdata update parts.json --match "Phaser 5500" --set yield=24000 --in-place
  hfdata update a.json b.json --match "Phaser 5500" --set yield=24000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateMatch, "match", "", "Value the match field must equal")
	updateCmd.Flags().StringVar(&updateField, "field", fieldset.DefaultMatchField, "Field to match on")
	updateCmd.Flags().StringArrayVar(&updateSet, "set", nil, "field=value to set on matches (repeatable)")
	updateCmd.Flags().StringVarP(&updateOutput, "output", "o", "", "Output path (single input only; may equal the input)")
	updateCmd.Flags().BoolVar(&updateInPlace, "in-place", false, "Overwrite the input file (single input only)")
	_ = updateCmd.MarkFlagRequired("match")
	_ = updateCmd.MarkFlagRequired("set")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if len(args) > 1 && (updateOutput != "" || updateInPlace) {
		return fmt.Errorf("--output and --in-place require a single input file")
	}
	if updateOutput != "" && updateInPlace {
		return fmt.Errorf("--output and --in-place are mutually exclusive")
	}

	set := map[string]string{}
	for _, arg := range updateSet {
		field, value, err := fieldset.ParseSet(arg)
		if err != nil {
			return err
		}
		set[field] = value
	}
	upd := fieldset.Update{MatchField: updateField, Match: updateMatch, Set: set}

	failed := 0
	for _, path := range args {
		if err := updateOne(path, upd, len(args) == 1); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
		}
	}
	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

func updateOne(path string, upd fieldset.Update, single bool) error {
	doc, err := readJSONDoc(path)
	if err != nil {
		return err
	}
	updated, matches, err := fieldset.Apply(doc, upd)
	if err != nil {
		return err
	}

	dest := updatedPath(path)
	if single {
		switch {
		case updateInPlace:
			dest = path
		case updateOutput != "":
			dest = updateOutput
		}
	}
	if err := writeJSONDoc(dest, updated, 2); err != nil {
		return err
	}
	fmt.Printf("%s: %d record(s) updated -> %s\n", path, matches, dest)
	return nil
}

func updatedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_updated" + ext
}
