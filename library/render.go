package library

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	ansiReset   = "\033[0m"
	ansiBlue    = "\033[94m"
	ansiGray    = "\033[90m"
	ansiCyan    = "\033[96m"
	ansiMagenta = "\033[95m"
	ansiYellow  = "\033[93m"
)

var colWidths = []int{18, 12, 10, 12, 14, 15, 12}

var colHeaders = []string{"Part Number", "Color", "Yield", "Region", "Metered/Sold", "IOT", "Chip Type"}

// FormatYield shortens a yield for table cells: 1500000 → "1.5M",
// 24000 → "24K". Non-numeric yields are truncated, empty ones shown as
// N/A.
func FormatYield(y FlexString) string {
	s := strings.TrimSpace(string(y))
	if s == "" || strings.EqualFold(s, "n/a") {
		return "N/A"
	}
	v, ok := Item{Yield: y}.YieldValue()
	if !ok {
		if len(s) > 8 {
			return s[:8]
		}
		return s
	}
	switch {
	case v >= 1000000:
		return fmt.Sprintf("%.1fM", float64(v)/1000000)
	case v >= 1000:
		return fmt.Sprintf("%.0fK", float64(v)/1000)
	default:
		return fmt.Sprintf("%d", v)
	}
}

// RenderClustered writes results grouped by printer model, with
// toner/drum/other sections and a per-model summary. ANSI color is
// applied when color is true.
func RenderClustered(w io.Writer, items []Item, color bool) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "\nFound %d result(s):\n", len(items))
	fmt.Fprintln(w, strings.Repeat("=", 120))

	groups := map[string][]Item{}
	for _, it := range items {
		model := strings.TrimSpace(it.PrinterModel)
		if model == "" {
			model = "Unknown Model"
		}
		groups[model] = append(groups[model], it)
	}
	models := make([]string, 0, len(groups))
	for m := range groups {
		models = append(models, m)
	}
	sort.Strings(models)

	for i, model := range models {
		fmt.Fprintf(w, "\nMODEL #%d: %s\n", i+1, model)
		fmt.Fprintln(w, strings.Repeat("-", 120))
		renderModelSections(w, groups[model], color)
		renderModelSummary(w, groups[model])
	}
}

func renderModelSections(w io.Writer, items []Item, color bool) {
	byType := map[string][]Item{}
	for _, it := range items {
		g := it.TypeGroup()
		byType[g] = append(byType[g], it)
	}
	for _, group := range []string{"toner", "drum", "other"} {
		rows := byType[group]
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%sS (%d item(s)):\n", strings.ToUpper(group), len(rows))
		renderTableHeader(w)
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Color != rows[j].Color {
				return rows[i].Color < rows[j].Color
			}
			return rows[i].PartNumber < rows[j].PartNumber
		})
		for _, it := range rows {
			renderRow(w, it, color)
		}
		fmt.Fprintln(w, "+"+strings.Repeat("-", 118))
	}
}

func renderTableHeader(w io.Writer) {
	fmt.Fprintln(w, "+"+strings.Repeat("-", 118))
	var b strings.Builder
	b.WriteString("| ")
	for i, h := range colHeaders {
		fmt.Fprintf(&b, "%-*s | ", colWidths[i], h)
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	fmt.Fprintln(w, "+"+strings.Repeat("-", 118))
}

func renderRow(w io.Writer, it Item, color bool) {
	cells := []string{
		orNA(it.PartNumber),
		orNA(it.Color),
		FormatYield(it.Yield),
		orNA(it.RegionZone),
		orNA(it.MeteredSold),
		orNA(it.IOTCodename),
		orNA(it.ChipType),
	}
	var b strings.Builder
	b.WriteString("| ")
	for i, cell := range cells {
		if len(cell) > colWidths[i] {
			cell = cell[:colWidths[i]]
		}
		padded := fmt.Sprintf("%-*s", colWidths[i], cell)
		if color {
			switch i {
			case 0:
				padded = ansiBlue + padded + ansiReset
			case 1:
				if c := colorCode(it.Color); c != "" {
					padded = c + padded + ansiReset
				}
			}
		}
		b.WriteString(padded)
		b.WriteString(" | ")
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}

func renderModelSummary(w io.Writer, items []Item) {
	fmt.Fprintln(w, "\nMODEL SUMMARY:")

	colorCounts := map[string]int{}
	regions := map[string]bool{}
	var yields []int
	for _, it := range items {
		c := it.Color
		if c == "" {
			c = "Unknown"
		}
		colorCounts[c]++
		if it.RegionZone != "" {
			regions[it.RegionZone] = true
		}
		if v, ok := it.YieldValue(); ok {
			yields = append(yields, v)
		}
	}

	var colorParts []string
	for _, c := range sortedKeys(colorCounts) {
		if c != "N/A" {
			colorParts = append(colorParts, fmt.Sprintf("%s (%d)", c, colorCounts[c]))
		}
	}
	if len(colorParts) > 0 {
		fmt.Fprintf(w, "  Colors: %s\n", strings.Join(colorParts, ", "))
	}
	if len(yields) > 0 {
		sort.Ints(yields)
		fmt.Fprintf(w, "  Yield Range: %d - %d pages\n", yields[0], yields[len(yields)-1])
	}
	if len(regions) > 0 {
		names := make([]string, 0, len(regions))
		for r := range regions {
			names = append(names, r)
		}
		sort.Strings(names)
		fmt.Fprintf(w, "  Regions: %s\n", strings.Join(names, ", "))
	}
}

// RenderSimple writes one table per item plus its printer model and
// consumable type. Used for part-number lookups where clustering by
// model adds nothing.
func RenderSimple(w io.Writer, items []Item, color bool) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "\nFound %d result(s):\n", len(items))
	fmt.Fprintln(w, strings.Repeat("=", 120))

	for i, it := range items {
		fmt.Fprintf(w, "\nITEM #%d:\n", i+1)
		renderTableHeader(w)
		renderRow(w, it, color)
		fmt.Fprintln(w, "+"+strings.Repeat("-", 118))
		if it.PrinterModel != "" {
			fmt.Fprintf(w, "  Printer Model: %s\n", it.PrinterModel)
		}
		if it.ConsumableType != "" {
			fmt.Fprintf(w, "  Type: %s\n", it.ConsumableType)
		}
	}
}

func colorCode(color string) string {
	switch strings.ToLower(color) {
	case "black":
		return ansiGray
	case "cyan":
		return ansiCyan
	case "magenta":
		return ansiMagenta
	case "yellow":
		return ansiYellow
	default:
		return ""
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
