package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hfdatalabs/hfdata-cli/sortjson"
	"github.com/spf13/cobra"
)

var (
	sortKeys    []string
	sortDesc    []bool
	sortMissing string
	sortIndent  int
	sortDryRun  bool
)

var sortCmd = &cobra.Command{
	Use:   "sort <input.json> <output.json>",
	Short: "Sort a JSON collection by one or more keys",
	Long: `Sort a JSON array of objects by one or more keys.

The input may be a bare array, a single object, or an object with one
key whose value is an array (the wrapper is kept). Keys may be
dot-paths (user.age) resolved through nested objects. The sort is
stable and never modifies the input file unless output equals input.

Directions:
  - No --desc: every key sorts ascending.
  - One --desc value: applied to every key.
  - Otherwise one --desc value per key, in key order.

Records lacking a sort key follow --missing: "last" (default) or
"first" place them at that end of the output; "error" fails the sort
naming the key and record. Values of different JSON types never
compare; mixing them under one key is an error.

Examples:
  hfdata sort data.json sorted.json -k name
  hfdata sort data.json sorted.json -k age -r
  hfdata sort data.json sorted.json -k dept -k salary -r false -r true
  hfdata sort data.json data.json -k user.age -m first
  hfdata sort data.json sorted.json -k name --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().StringArrayVarP(&sortKeys, "key", "k", nil, "Sort key, highest priority first (repeatable; dot-paths allowed)")
	sortCmd.Flags().BoolSliceVarP(&sortDesc, "desc", "r", nil, "Sort descending (one value, or one per key)")
	sortCmd.Flags().StringVarP(&sortMissing, "missing", "m", "last", "Where records lacking a key go: first, last, or error")
	sortCmd.Flags().IntVarP(&sortIndent, "indent", "i", 2, "Output indent width (0 = compact)")
	sortCmd.Flags().BoolVarP(&sortDryRun, "dry-run", "d", false, "Preview the sorted result without writing")
	_ = sortCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	input, output := args[0], args[1]

	doc, err := readJSONDoc(input)
	if err != nil {
		return err
	}

	sorted, err := sortjson.Sort(doc, sortjson.Options{
		Keys:       sortKeys,
		Descending: sortDesc,
		Missing:    sortjson.MissingPolicy(sortMissing),
	})
	if err != nil {
		return err
	}

	if sortDryRun {
		return previewSorted(sorted)
	}

	slog.Info("writing sorted output", "path", output)
	if err := writeJSONDoc(output, sorted, sortIndent); err != nil {
		return err
	}
	fmt.Printf("Sorted %s by %v -> %s\n", input, sortKeys, output)
	return nil
}

// previewSorted prints the first elements of the sorted collection and
// how many more would be written.
func previewSorted(sorted any) error {
	const previewLen = 3

	list, ok := sorted.([]any)
	if !ok {
		// Wrapped array: preview the contained list but say so.
		if m, isMap := sorted.(map[string]any); isMap && len(m) == 1 {
			for k, v := range m {
				if inner, isList := v.([]any); isList {
					fmt.Printf("Dry run (wrapped in %q):\n", k)
					return previewList(inner, previewLen)
				}
			}
		}
		fmt.Println("Dry run:")
		return jsonPrint(sorted)
	}
	fmt.Println("Dry run:")
	return previewList(list, previewLen)
}

func previewList(list []any, n int) error {
	head := list
	if len(head) > n {
		head = head[:n]
	}
	for _, el := range head {
		data, err := json.MarshalIndent(el, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}
	if rest := len(list) - len(head); rest > 0 {
		fmt.Printf("... and %d more element(s)\n", rest)
	}
	return nil
}
