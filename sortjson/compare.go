package sortjson

import (
	"encoding/json"
	"fmt"
	"strings"
)

// valueClass is the three-way presence classification of a sort value.
// Absent and null records are placed by policy, not compared.
type valueClass int

const (
	classPresent valueClass = iota
	classNull
	classAbsent
)

// sortValue is one record's value for one sort key.
type sortValue struct {
	class valueClass
	value any
}

// place returns where a non-present value lands relative to present
// ones: -1 sorts to the front, +1 to the back, 0 means present.
// Placement is independent of the key's direction. Null never errors;
// under the "error" policy (reserved for true absence) it falls back to
// the back of the order.
func (sv sortValue) place(policy MissingPolicy) int {
	switch sv.class {
	case classPresent:
		return 0
	case classNull:
		if policy == MissingFirst {
			return -1
		}
		return 1
	default: // classAbsent; "error" policy is rejected before sorting
		if policy == MissingFirst {
			return -1
		}
		return 1
	}
}

// compare orders two sort values for a single key. Direction applies
// only to present-vs-present comparisons; absent/null placement already
// accounts for the final output position.
func compare(a, b sortValue, descending bool, policy MissingPolicy, key string) (int, error) {
	pa, pb := a.place(policy), b.place(policy)
	if pa != 0 || pb != 0 {
		switch {
		case pa < pb:
			return -1, nil
		case pa > pb:
			return 1, nil
		default:
			return 0, nil
		}
	}
	c, err := compareValues(a.value, b.value, key)
	if err != nil {
		return 0, err
	}
	if descending {
		c = -c
	}
	return c, nil
}

// compareValues compares two present JSON values of the same kind.
// Mixed kinds are never coerced; they surface as a *CompareError.
func compareValues(a, b any, key string) (int, error) {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return 0, &CompareError{Key: key, LeftKind: ka, RightKind: kb}
	}
	switch ka {
	case "number":
		fa, fb := toFloat(a), toFloat(b)
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		}
		return 0, nil
	case "string":
		return strings.Compare(a.(string), b.(string)), nil
	case "boolean":
		ba, bb := a.(bool), b.(bool)
		switch {
		case !ba && bb:
			return -1, nil
		case ba && !bb:
			return 1, nil
		}
		return 0, nil
	case "array":
		return compareArrays(a.([]any), b.([]any), key)
	default:
		// Objects (and anything exotic) have no defined order.
		return 0, &CompareError{Key: key, LeftKind: ka, RightKind: kb}
	}
}

// compareArrays orders arrays element-wise; a strict prefix sorts first.
func compareArrays(a, b []any, key string) (int, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c, err := compareValues(a[i], b[i], key)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	switch {
	case len(a) < len(b):
		return -1, nil
	case len(a) > len(b):
		return 1, nil
	}
	return 0, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case float64, json.Number, int, int64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, _ := n.Float64()
		return f
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
