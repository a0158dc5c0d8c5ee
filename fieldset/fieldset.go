// Package fieldset applies field-level batch updates to JSON records
// selected by an exact match on one field. Only fields a matching
// record already has are overwritten; everything else passes through
// untouched.
package fieldset

import (
	"fmt"
	"strings"
)

// DefaultMatchField is the field updates match against unless the
// caller picks another one.
const DefaultMatchField = "printer_model"

// Update describes one batch update pass.
type Update struct {
	MatchField string            // field to match on; DefaultMatchField when empty
	Match      string            // exact value to match
	Set        map[string]string // field → replacement value
}

// ParseSet parses a "field=value" flag argument.
func ParseSet(arg string) (field, value string, err error) {
	field, value, ok := strings.Cut(arg, "=")
	if !ok || field == "" {
		return "", "", fmt.Errorf("invalid --set %q: expected field=value", arg)
	}
	return field, value, nil
}

// Apply returns doc with the update applied and the number of records
// that matched. Matching records are shallow-copied; the input is never
// mutated. A single object keeps its shape; an array keeps its order.
// Non-object values pass through and never match.
func Apply(doc any, u Update) (any, int, error) {
	if u.Match == "" {
		return nil, 0, fmt.Errorf("match value must not be empty")
	}
	if len(u.Set) == 0 {
		return nil, 0, fmt.Errorf("at least one field update is required")
	}
	field := u.MatchField
	if field == "" {
		field = DefaultMatchField
	}

	switch v := doc.(type) {
	case map[string]any:
		updated, matched := applyOne(v, field, u)
		if matched {
			return updated, 1, nil
		}
		return v, 0, nil
	case []any:
		out := make([]any, len(v))
		matches := 0
		for i, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				out[i] = el
				continue
			}
			updated, matched := applyOne(obj, field, u)
			if matched {
				matches++
				out[i] = updated
			} else {
				out[i] = obj
			}
		}
		return out, matches, nil
	default:
		return doc, 0, nil
	}
}

func applyOne(rec map[string]any, field string, u Update) (map[string]any, bool) {
	s, ok := rec[field].(string)
	if !ok || s != u.Match {
		return rec, false
	}
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	for k, v := range u.Set {
		// Only overwrite fields the record already carries.
		if _, ok := out[k]; ok {
			out[k] = v
		}
	}
	return out, true
}
