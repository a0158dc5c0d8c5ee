package library

import (
	"fmt"
	"strconv"
	"strings"
)

// Field selects which record field a search matches against.
type Field string

const (
	ByModel  Field = "model"  // substring, case-insensitive
	ByPart   Field = "part"   // exact, case-insensitive
	ByColor  Field = "color"  // exact, case-insensitive
	ByIOT    Field = "iot"    // substring, case-insensitive
	ByRegion Field = "region" // substring, case-insensitive
	ByType   Field = "type"   // exact, case-insensitive
	ByYield  Field = "yield"  // numeric: N, >N, <N, N-M
)

// Query is a single-field search.
type Query struct {
	Field Field
	Text  string
}

// Search filters items by the query. Yield queries with unparseable
// text return an error; all other query text is taken literally.
func Search(items []Item, q Query) ([]Item, error) {
	if q.Field == ByYield {
		spec, err := ParseYieldQuery(q.Text)
		if err != nil {
			return nil, err
		}
		var out []Item
		for _, it := range items {
			if v, ok := it.YieldValue(); ok && spec.matches(v) {
				out = append(out, it)
			}
		}
		return out, nil
	}

	needle := strings.ToLower(q.Text)
	var out []Item
	for _, it := range items {
		var match bool
		switch q.Field {
		case ByModel:
			match = strings.Contains(strings.ToLower(it.PrinterModel), needle)
		case ByPart:
			match = strings.ToLower(it.PartNumber) == needle
		case ByColor:
			match = strings.ToLower(it.Color) == needle
		case ByIOT:
			match = strings.Contains(strings.ToLower(it.IOTCodename), needle)
		case ByRegion:
			match = strings.Contains(strings.ToLower(it.RegionZone), needle)
		case ByType:
			match = strings.ToLower(it.ConsumableType) == needle
		default:
			return nil, fmt.Errorf("unknown search field %q", string(q.Field))
		}
		if match {
			out = append(out, it)
		}
	}
	return out, nil
}

// YieldSpec is a parsed yield query.
type YieldSpec struct {
	Op       string // "exact", "greater", "less", "range"
	Min, Max int
}

// ParseYieldQuery parses "5000", ">5000", "<10000", or "5000-10000".
func ParseYieldQuery(text string) (YieldSpec, error) {
	text = strings.TrimSpace(text)

	if strings.Contains(text, "-") && !strings.HasPrefix(text, "-") {
		lo, hi, _ := strings.Cut(text, "-")
		min, err1 := strconv.Atoi(strings.TrimSpace(lo))
		max, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil {
			return YieldSpec{}, fmt.Errorf("invalid yield range %q (want N-M)", text)
		}
		return YieldSpec{Op: "range", Min: min, Max: max}, nil
	}

	if after, ok := strings.CutPrefix(text, ">"); ok {
		v, err := strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return YieldSpec{}, fmt.Errorf("invalid yield query %q (want >N)", text)
		}
		return YieldSpec{Op: "greater", Min: v}, nil
	}

	if after, ok := strings.CutPrefix(text, "<"); ok {
		v, err := strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return YieldSpec{}, fmt.Errorf("invalid yield query %q (want <N)", text)
		}
		return YieldSpec{Op: "less", Min: v}, nil
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return YieldSpec{}, fmt.Errorf("invalid yield query %q (want N, >N, <N, or N-M)", text)
	}
	return YieldSpec{Op: "exact", Min: v}, nil
}

func (s YieldSpec) matches(v int) bool {
	switch s.Op {
	case "range":
		return v >= s.Min && v <= s.Max
	case "greater":
		return v > s.Min
	case "less":
		return v < s.Min
	default:
		return v == s.Min
	}
}
