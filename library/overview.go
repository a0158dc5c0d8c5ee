package library

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ModelOverview is the per-model line in the list view.
type ModelOverview struct {
	Model       string   `json:"model"`
	Items       int      `json:"items"`
	Toners      int      `json:"toners"`
	Drums       int      `json:"drums"`
	UniqueParts int      `json:"unique_parts"`
	Colors      []string `json:"colors,omitempty"`
}

// Overview groups items by printer model, sorted by model name.
func Overview(items []Item) []ModelOverview {
	byModel := map[string][]Item{}
	for _, it := range items {
		model := it.PrinterModel
		if model == "" {
			model = "Unknown"
		}
		byModel[model] = append(byModel[model], it)
	}

	models := make([]string, 0, len(byModel))
	for m := range byModel {
		models = append(models, m)
	}
	sort.Strings(models)

	out := make([]ModelOverview, 0, len(models))
	for _, model := range models {
		rows := byModel[model]
		ov := ModelOverview{Model: model, Items: len(rows)}
		parts := map[string]bool{}
		colors := map[string]bool{}
		for _, it := range rows {
			switch it.TypeGroup() {
			case "toner":
				ov.Toners++
			case "drum":
				ov.Drums++
			}
			parts[it.PartNumber] = true
			if it.Color != "" {
				colors[it.Color] = true
			}
		}
		ov.UniqueParts = len(parts)
		for c := range colors {
			ov.Colors = append(ov.Colors, c)
		}
		sort.Strings(ov.Colors)
		out = append(out, ov)
	}
	return out
}

// RenderOverviewPage writes one page of model overviews.
func RenderOverviewPage(w io.Writer, page []ModelOverview, pageNum, totalPages int) {
	fmt.Fprintf(w, "\nPage %d/%d:\n", pageNum, totalPages)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	for _, ov := range page {
		model := ov.Model
		if len(model) > 60 {
			model = model[:60] + "..."
		}
		fmt.Fprintf(w, "\n%s\n", model)
		fmt.Fprintf(w, "   Items: %d (%d toner(s), %d drum(s))\n", ov.Items, ov.Toners, ov.Drums)
		fmt.Fprintf(w, "   Unique Parts: %d\n", ov.UniqueParts)
		if len(ov.Colors) > 0 {
			sample := ov.Colors
			suffix := ""
			if len(sample) > 3 {
				sample = sample[:3]
				suffix = "..."
			}
			fmt.Fprintf(w, "   Colors: %s%s\n", strings.Join(sample, ", "), suffix)
		}
	}
}

// ParseTSV reads tab-separated records, one per line. A line needs at
// least part number, color, and printer model; trailing fields are
// optional. Lines with fewer fields are counted as skipped.
func ParseTSV(r io.Reader) (items []Item, skipped int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("reading import data: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			skipped++
			continue
		}
		field := func(i int) string {
			if i < len(parts) {
				return strings.TrimSpace(parts[i])
			}
			return ""
		}
		items = append(items, Item{
			PartNumber:     field(0),
			Color:          field(1),
			PrinterModel:   field(2),
			ConsumableType: field(3),
			Yield:          FlexString(field(4)),
			RegionZone:     field(5),
			MeteredSold:    field(6),
			IOTCodename:    field(7),
			ChipType:       field(8),
		})
	}
	return items, skipped, nil
}
