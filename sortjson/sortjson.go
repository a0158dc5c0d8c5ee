// Package sortjson sorts decoded JSON collections by multiple keys with
// per-key direction and a configurable policy for records that lack a
// sort key. Keys may be dot-paths (user.age) resolved through nested
// objects. Sorting is stable, never mutates the input, and reproduces
// the input's wrapping shape (bare array, single object, or single-key
// object containing an array).
package sortjson

import (
	"fmt"
	"sort"
	"strings"
)

// PathSeparator splits a dot-path sort key into nested field lookups.
const PathSeparator = "."

// MissingPolicy governs where a record lacking a sort key lands.
type MissingPolicy string

const (
	// MissingFirst places records lacking the key before all records
	// that have it, regardless of the key's direction.
	MissingFirst MissingPolicy = "first"
	// MissingLast places them after all records that have the key.
	MissingLast MissingPolicy = "last"
	// MissingError fails the sort with a *MissingKeyError instead.
	MissingError MissingPolicy = "error"
)

// Options configures a sort. Keys is the priority-ordered key list.
// Descending may be empty (all ascending), a single element (uniform),
// or one element per key.
type Options struct {
	Keys       []string
	Descending []bool
	Missing    MissingPolicy
}

// Sort returns doc reordered according to opts. doc is a value produced
// by encoding/json unmarshaling into any. The input is not modified;
// records in the output are the original record values in new order.
func Sort(doc any, opts Options) (any, error) {
	desc, policy, err := normalize(opts)
	if err != nil {
		return nil, err
	}

	// A single-key object wrapping an array: sort the contained array
	// and keep the wrapper. Only one level of this is defined.
	if m, ok := doc.(map[string]any); ok && len(m) == 1 {
		for k, v := range m {
			if list, ok := v.([]any); ok {
				sorted, err := sortRecords(list, opts.Keys, desc, policy)
				if err != nil {
					return nil, err
				}
				return map[string]any{k: sorted}, nil
			}
		}
	}

	// A bare object sorts as a one-element sequence and unwraps after.
	if m, ok := doc.(map[string]any); ok {
		sorted, err := sortRecords([]any{m}, opts.Keys, desc, policy)
		if err != nil {
			return nil, err
		}
		if len(sorted) == 1 {
			return sorted[0], nil
		}
		return sorted, nil
	}

	list, ok := doc.([]any)
	if !ok {
		// Scalars and other shapes pass through unchanged.
		return doc, nil
	}
	return sortRecords(list, opts.Keys, desc, policy)
}

func normalize(opts Options) ([]bool, MissingPolicy, error) {
	if len(opts.Keys) == 0 {
		return nil, "", &ConfigError{Reason: "at least one sort key is required"}
	}
	for _, k := range opts.Keys {
		if k == "" {
			return nil, "", &ConfigError{Reason: "sort keys must not be empty"}
		}
	}

	policy := opts.Missing
	if policy == "" {
		policy = MissingLast
	}
	switch policy {
	case MissingFirst, MissingLast, MissingError:
	default:
		return nil, "", &ConfigError{Reason: fmt.Sprintf("unknown missing-key policy %q", string(policy))}
	}

	desc := opts.Descending
	switch len(desc) {
	case 0:
		desc = make([]bool, len(opts.Keys))
	case 1:
		uniform := desc[0]
		desc = make([]bool, len(opts.Keys))
		for i := range desc {
			desc[i] = uniform
		}
	case len(opts.Keys):
	default:
		return nil, "", &ConfigError{Reason: fmt.Sprintf(
			"direction count mismatch: %d directions for %d keys", len(desc), len(opts.Keys))}
	}
	return desc, policy, nil
}

// prepared pairs an original record with the flattened shallow copy the
// sort actually reads. Dot-path values are injected into the copy under
// the full path string; the original is what ends up in the output, so
// synthetic fields never leak.
type prepared struct {
	original any
	flat     map[string]any
}

func sortRecords(list []any, keys []string, desc []bool, policy MissingPolicy) ([]any, error) {
	prep := make([]prepared, len(list))
	for i, el := range list {
		prep[i] = prepare(el, keys)
	}

	// The error policy applies only to true absence and fails before
	// any reordering happens.
	if policy == MissingError {
		for i := range prep {
			for _, k := range keys {
				if classify(prep[i], k).class == classAbsent {
					return nil, &MissingKeyError{Key: k, Index: i, Record: list[i]}
				}
			}
		}
	}

	var cmpErr error
	sort.SliceStable(prep, func(i, j int) bool {
		if cmpErr != nil {
			return false
		}
		for n, k := range keys {
			c, err := compare(classify(prep[i], k), classify(prep[j], k), desc[n], policy, k)
			if err != nil {
				cmpErr = err
				return false
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	if cmpErr != nil {
		return nil, cmpErr
	}

	out := make([]any, len(prep))
	for i, p := range prep {
		out[i] = p.original
	}
	return out, nil
}

func prepare(el any, keys []string) prepared {
	m, ok := el.(map[string]any)
	if !ok {
		// Non-object elements lack every key; the missing-key policy
		// decides where they go.
		return prepared{original: el}
	}
	flat := make(map[string]any, len(m))
	for k, v := range m {
		flat[k] = v
	}
	for _, key := range keys {
		if !strings.Contains(key, PathSeparator) {
			continue
		}
		if v, found := resolvePath(m, key); found {
			flat[key] = v
		} else {
			// Failed resolution counts as absent, not null.
			delete(flat, key)
		}
	}
	return prepared{original: el, flat: flat}
}

func classify(p prepared, key string) sortValue {
	if p.flat == nil {
		return sortValue{class: classAbsent}
	}
	v, ok := p.flat[key]
	if !ok {
		return sortValue{class: classAbsent}
	}
	if v == nil {
		return sortValue{class: classNull}
	}
	return sortValue{class: classPresent, value: v}
}

// resolvePath walks a dot-path through nested objects. It fails as soon
// as a step is not an object or lacks the next field.
func resolvePath(m map[string]any, path string) (any, bool) {
	var cur any = m
	for _, part := range strings.Split(path, PathSeparator) {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
