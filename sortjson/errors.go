package sortjson

import "fmt"

// ConfigError reports an invalid sort configuration (bad key list,
// direction count mismatch, unknown missing-key policy). No sorting is
// attempted when one is returned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "sort configuration: " + e.Reason }

// MissingKeyError reports a record that lacks a sort key under the
// "error" missing-key policy. Index is the record's position in the
// input sequence; Record is the offending record itself.
type MissingKeyError struct {
	Key    string
	Index  int
	Record any
}

func (e *MissingKeyError) Error() string {
	if id := identify(e.Record); id != "" {
		return fmt.Sprintf("sort key %q not found in record %d (%s)", e.Key, e.Index, id)
	}
	return fmt.Sprintf("sort key %q not found in record %d", e.Key, e.Index)
}

// CompareError reports two values of incompatible kinds meeting at the
// same sort key.
type CompareError struct {
	Key       string
	LeftKind  string
	RightKind string
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("cannot compare %s with %s at sort key %q", e.LeftKind, e.RightKind, e.Key)
}

// identify pulls a human-recognizable field out of a record for error
// messages, preferring conventional identifier names.
func identify(record any) string {
	m, ok := record.(map[string]any)
	if !ok {
		return ""
	}
	for _, k := range []string{"id", "name", "part_number", "key"} {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return fmt.Sprintf("%s=%q", k, s)
			}
		}
	}
	return ""
}
