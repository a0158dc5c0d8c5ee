package library

import (
	"fmt"
	"io"
	"sort"
)

// Stats summarizes a database.
type Stats struct {
	Total        int            `json:"total"`
	UniqueModels int            `json:"unique_models"`
	Regions      int            `json:"regions"`
	ChipTypes    int            `json:"chip_types"`
	YieldMin     int            `json:"yield_min,omitempty"`
	YieldMax     int            `json:"yield_max,omitempty"`
	YieldAvg     int            `json:"yield_avg,omitempty"`
	ByColor      map[string]int `json:"by_color"`
	ByType       map[string]int `json:"by_type"`
	ByChip       map[string]int `json:"by_chip,omitempty"`
}

// ComputeStats aggregates counts over all items.
func ComputeStats(items []Item) Stats {
	st := Stats{
		Total:   len(items),
		ByColor: map[string]int{},
		ByType:  map[string]int{},
		ByChip:  map[string]int{},
	}
	models := map[string]bool{}
	regions := map[string]bool{}
	var yields []int

	for _, it := range items {
		color := it.Color
		if color == "" {
			color = "Unknown"
		}
		st.ByColor[color]++

		ctype := it.ConsumableType
		if ctype == "" {
			ctype = "Unknown"
		}
		st.ByType[ctype]++

		models[it.PrinterModel] = true
		if it.RegionZone != "" {
			regions[it.RegionZone] = true
		}
		if it.ChipType != "" {
			st.ByChip[it.ChipType]++
		}
		if v, ok := it.YieldValue(); ok {
			yields = append(yields, v)
		}
	}

	st.UniqueModels = len(models)
	st.Regions = len(regions)
	st.ChipTypes = len(st.ByChip)
	if len(yields) > 0 {
		sort.Ints(yields)
		st.YieldMin = yields[0]
		st.YieldMax = yields[len(yields)-1]
		sum := 0
		for _, v := range yields {
			sum += v
		}
		st.YieldAvg = sum / len(yields)
	}
	return st
}

// RenderStats writes the human-readable statistics report.
func RenderStats(w io.Writer, st Stats) {
	fmt.Fprintln(w, "Database Statistics")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Total Items: %d\n", st.Total)
	fmt.Fprintf(w, "Unique Printer Models: %d\n", st.UniqueModels)
	fmt.Fprintf(w, "Regions/Zones: %d\n", st.Regions)
	fmt.Fprintf(w, "Chip Types: %d\n", st.ChipTypes)

	if st.YieldMax > 0 || st.YieldMin > 0 {
		fmt.Fprintln(w, "\nYield Statistics:")
		fmt.Fprintf(w, "  Average Yield: %d pages\n", st.YieldAvg)
		fmt.Fprintf(w, "  Min Yield: %d pages\n", st.YieldMin)
		fmt.Fprintf(w, "  Max Yield: %d pages\n", st.YieldMax)
	}

	fmt.Fprintln(w, "\nBy Color/Drum Type:")
	for _, c := range sortedKeys(st.ByColor) {
		fmt.Fprintf(w, "  %s: %d items\n", c, st.ByColor[c])
	}

	fmt.Fprintln(w, "\nBy Consumable Type:")
	for _, t := range sortedKeys(st.ByType) {
		fmt.Fprintf(w, "  %s: %d items\n", t, st.ByType[t])
	}

	if len(st.ByChip) > 0 {
		fmt.Fprintln(w, "\nChip Types:")
		for _, c := range sortedKeys(st.ByChip) {
			fmt.Fprintf(w, "  %s: %d items\n", c, st.ByChip[c])
		}
	}
}
