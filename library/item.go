// Package library implements a flat-file database of printer consumable
// records: search, rendering, statistics, and import/export. The
// database is a plain JSON array on disk.
package library

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Item is one consumable record. All fields are optional except the
// part number, printer model, and color, which imports require.
type Item struct {
	PartNumber     string     `json:"part_number"`
	Color          string     `json:"color"`
	PrinterModel   string     `json:"printer_model"`
	ConsumableType string     `json:"consumable_type"`
	Yield          FlexString `json:"yield"`
	RegionZone     string     `json:"region_zone"`
	MeteredSold    string     `json:"metered_sold"`
	IOTCodename    string     `json:"iot_codename"`
	ChipType       string     `json:"chip_type"`
}

// FlexString accepts JSON strings, numbers, and null. Source catalogs
// are inconsistent about whether yields are quoted.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// YieldValue parses the item's yield as a page count, tolerating
// thousands separators ("5,000").
func (it Item) YieldValue() (int, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(string(it.Yield)), ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TypeGroup buckets the consumable type into toner, drum, or other for
// rendering.
func (it Item) TypeGroup() string {
	switch strings.ToLower(strings.TrimSpace(it.ConsumableType)) {
	case "toner":
		return "toner"
	case "drum":
		return "drum"
	default:
		return "other"
	}
}
