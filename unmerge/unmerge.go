// Package unmerge converts spreadsheets with merged or blank-repeated
// cells into row-per-record JSON. The first row is the header; merged
// ranges collapse to their top-left value, which is either expanded
// back over the range ("unmerge" method) or recovered by column-wise
// forward fill ("simple" method).
package unmerge

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Method selects how collapsed cells are recovered.
type Method string

const (
	// MethodSimple forward-fills blank cells from the value above,
	// column by column, below the header row.
	MethodSimple Method = "simple"
	// MethodUnmerge expands each merged range's top-left value to every
	// cell the range covers.
	MethodUnmerge Method = "unmerge"
)

// ParseMethod validates a method flag value.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodSimple, MethodUnmerge:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown method %q (want simple or unmerge)", s)
	}
}

// Sheet is the rectangular grid of the active worksheet after recovery.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string // data rows, below the header
}

// Load reads the active sheet of an xlsx workbook and applies the
// recovery method.
func Load(path string, method Method) (*Sheet, error) {
	if err := CheckReadable(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	name := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", name)
	}

	grid := rectangular(rows)

	if method == MethodUnmerge {
		merged, err := f.GetMergeCells(name)
		if err != nil {
			return nil, fmt.Errorf("reading merged ranges: %w", err)
		}
		if err := expandMerged(grid, merged); err != nil {
			return nil, err
		}
	}

	sheet := &Sheet{
		Name:    name,
		Headers: headers(grid[0]),
		Rows:    grid[1:],
	}
	if method == MethodSimple {
		forwardFill(sheet.Rows)
	}
	return sheet, nil
}

// rectangular pads ragged rows out to the widest row. excelize trims
// trailing empty cells per row.
func rectangular(rows [][]string) [][]string {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	grid := make([][]string, len(rows))
	for i, r := range rows {
		row := make([]string, width)
		copy(row, r)
		grid[i] = row
	}
	return grid
}

// headers names the columns from the first row; blank header cells get
// positional names.
func headers(first []string) []string {
	out := make([]string, len(first))
	for i, h := range first {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		out[i] = h
	}
	return out
}

// expandMerged writes each merged range's anchor value into every cell
// the range covers. The grid already holds the value at the anchor.
func expandMerged(grid [][]string, merged []excelize.MergeCell) error {
	for _, mc := range merged {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return fmt.Errorf("merged range %s: %w", mc.GetStartAxis(), err)
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return fmt.Errorf("merged range %s: %w", mc.GetEndAxis(), err)
		}
		value := mc.GetCellValue()
		for r := r1; r <= r2; r++ {
			for c := c1; c <= c2; c++ {
				if r-1 < len(grid) && c-1 < len(grid[r-1]) {
					grid[r-1][c-1] = value
				}
			}
		}
	}
	return nil
}

// forwardFill copies the last non-blank value downward in each column.
func forwardFill(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	width := len(rows[0])
	for col := 0; col < width; col++ {
		last := ""
		for i := range rows {
			if strings.TrimSpace(rows[i][col]) == "" {
				rows[i][col] = last
			} else {
				last = rows[i][col]
			}
		}
	}
}

// Records converts the sheet to header-keyed records. Cells that parse
// as numbers become JSON numbers; everything else stays a string.
func (s *Sheet) Records() []map[string]any {
	out := make([]map[string]any, 0, len(s.Rows))
	for _, row := range s.Rows {
		rec := make(map[string]any, len(s.Headers))
		for i, h := range s.Headers {
			rec[h] = cellValue(row[i])
		}
		out = append(out, rec)
	}
	return out
}

func cellValue(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	return cell
}

// WriteJSON writes the sheet's records as an indented JSON array.
func (s *Sheet) WriteJSON(path string) error {
	data, err := json.MarshalIndent(s.Records(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteXLSX writes the recovered grid back out as a plain workbook for
// manual verification.
func (s *Sheet) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := make([]any, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range s.Rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = cellValue(c)
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
