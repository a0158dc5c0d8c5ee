package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hfdatalabs/hfdata-cli/template"
	"github.com/spf13/cobra"
)

var normalizeTemplate string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <source.json> <output.json>",
	Short: "Normalize JSON records onto a fixed field template",
	Long: `Copy each source object onto a fresh copy of a field template:
allow-listed fields are taken from the source, unknown fields are
dropped, and missing fields keep the template's default.

The source may be one object or an array of objects; non-object array
entries are skipped with a warning. The output is always an array.

Without --template the built-in consumable-record template is used
(part_number, color, printer_model, consumable_type, yield,
region_zone, metered_sold, iot_codename, chip_type, all defaulting to
""). A custom template is a YAML mapping of field names to defaults;
field order in the file is preserved.

Examples:
  hfdata normalize scraped.json clean.json
  hfdata normalize scraped.json clean.json -t fields.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeTemplate, "template", "t", "", "YAML template of field names to defaults")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	source, output := args[0], args[1]

	tpl := template.Builtin()
	if normalizeTemplate != "" {
		var err error
		tpl, err = template.LoadYAML(normalizeTemplate)
		if err != nil {
			return err
		}
	}

	doc, err := readJSONDoc(source)
	if err != nil {
		return err
	}
	results, skipped, err := template.Normalize(doc, tpl)
	if err != nil {
		return err
	}
	for _, i := range skipped {
		slog.Warn("skipping non-object entry", "index", i)
	}

	out := make([]any, len(results))
	for i, rec := range results {
		out[i] = rec
	}
	if err := writeJSONDoc(output, out, 2); err != nil {
		return err
	}

	fmt.Printf("Normalized %d record(s)", len(results))
	if len(skipped) > 0 {
		fmt.Printf(", skipped %d", len(skipped))
	}
	fmt.Printf(" -> %s\n", output)
	if err := previewList(out, 2); err != nil {
		return err
	}
	return nil
}
