package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hfdatalabs/hfdata-cli/unmerge"
	"github.com/spf13/cobra"
)

var (
	unmergeMethod  string
	unmergeOutDir  string
	unmergePreview bool
)

var unmergeCmd = &cobra.Command{
	Use:   "unmerge <file.xlsx> [file.xlsx ...]",
	Short: "Convert spreadsheets with merged cells to JSON",
	Long: `Convert spreadsheets whose merged or blank-repeated cells collapse
grouped values into row-per-record JSON.

Methods:
  simple   Forward-fill blank cells from the value above, column by
           column, below the header row.
  unmerge  Expand each merged range's top-left value to every cell the
           range covers. Blanks that were never merged stay blank.
  both     Run both methods, writing one output set per method.

For each input file the command writes <base>.json and
<base>_unmerged.xlsx into the output directory (suffixed with the
method name under --method both). Legacy binary .xls workbooks are
rejected; convert them to .xlsx first.

Failures are reported per file and processing continues; the exit code
is non-zero if any file failed.

Examples:
  hfdata unmerge catalog.xlsx
  hfdata unmerge catalog.xlsx --method unmerge
  hfdata unmerge a.xlsx b.xlsx -o converted/
  hfdata unmerge catalog.xlsx --preview`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUnmerge,
}

func init() {
	unmergeCmd.Flags().StringVar(&unmergeMethod, "method", "simple", "Recovery method: simple, unmerge, or both")
	unmergeCmd.Flags().StringVarP(&unmergeOutDir, "output", "o", "output", "Directory for converted files")
	unmergeCmd.Flags().BoolVarP(&unmergePreview, "preview", "p", false, "Show sheet shape and first rows without writing")
	rootCmd.AddCommand(unmergeCmd)
}

func runUnmerge(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var methods []unmerge.Method
	if unmergeMethod == "both" {
		methods = []unmerge.Method{unmerge.MethodSimple, unmerge.MethodUnmerge}
	} else {
		m, err := unmerge.ParseMethod(unmergeMethod)
		if err != nil {
			return err
		}
		methods = []unmerge.Method{m}
	}

	if !unmergePreview {
		if err := os.MkdirAll(unmergeOutDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	failed := 0
	for _, path := range args {
		if err := unmergeOne(path, methods); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
		}
	}

	fmt.Printf("\nProcessed %d/%d file(s)\n", len(args)-failed, len(args))
	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

func unmergeOne(path string, methods []unmerge.Method) error {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for _, method := range methods {
		sheet, err := unmerge.Load(path, method)
		if err != nil {
			return err
		}

		if unmergePreview {
			previewSheet(path, method, sheet)
			continue
		}

		name := base
		if len(methods) > 1 {
			name = base + "_" + string(method)
		}
		jsonPath := filepath.Join(unmergeOutDir, name+".json")
		xlsxPath := filepath.Join(unmergeOutDir, name+"_unmerged.xlsx")

		slog.Info("converting", "file", path, "method", string(method))
		if err := sheet.WriteJSON(jsonPath); err != nil {
			return err
		}
		if err := sheet.WriteXLSX(xlsxPath); err != nil {
			return err
		}
		fmt.Printf("%s: %d record(s) -> %s, %s\n", path, len(sheet.Rows), jsonPath, xlsxPath)
	}
	return nil
}

func previewSheet(path string, method unmerge.Method, sheet *unmerge.Sheet) {
	fmt.Printf("\n%s (%s, method %s): %d row(s) x %d column(s)\n",
		path, sheet.Name, string(method), len(sheet.Rows), len(sheet.Headers))
	fmt.Printf("Columns: %s\n", strings.Join(sheet.Headers, ", "))
	n := len(sheet.Rows)
	if n > 5 {
		n = 5
	}
	for _, row := range sheet.Rows[:n] {
		fmt.Printf("  %s\n", strings.Join(row, " | "))
	}
	if rest := len(sheet.Rows) - n; rest > 0 {
		fmt.Printf("  ... and %d more row(s)\n", rest)
	}
}
