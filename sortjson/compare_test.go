package sortjson

import (
	"encoding/json"
	"testing"
)

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name    string
		a, b    any
		want    int
		wantErr bool
	}{
		{"numbers less", 1.0, 2.0, -1, false},
		{"numbers equal", 2.0, 2.0, 0, false},
		{"numbers greater", 3.0, 2.0, 1, false},
		{"json.Number and float", json.Number("1.5"), 2.0, -1, false},
		{"strings", "apple", "pear", -1, false},
		{"bools", false, true, -1, false},
		{"array prefix sorts first", []any{1.0}, []any{1.0, 2.0}, -1, false},
		{"array element order", []any{1.0, 3.0}, []any{1.0, 2.0}, 1, false},
		{"string vs number", "1", 1.0, 0, true},
		{"bool vs number", true, 1.0, 0, true},
		{"objects have no order", map[string]any{}, map[string]any{}, 0, true},
		{"array with mixed elements", []any{"x"}, []any{1.0}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compareValues(tt.a, tt.b, "k")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error comparing %v and %v", tt.a, tt.b)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("compareValues(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPlaceIgnoresDirection(t *testing.T) {
	absent := sortValue{class: classAbsent}
	null := sortValue{class: classNull}
	present := sortValue{class: classPresent, value: 1.0}

	if got := absent.place(MissingFirst); got != -1 {
		t.Errorf("absent/first place = %d, want -1", got)
	}
	if got := absent.place(MissingLast); got != 1 {
		t.Errorf("absent/last place = %d, want 1", got)
	}
	if got := null.place(MissingError); got != 1 {
		t.Errorf("null/error place = %d, want 1 (error is reserved for absence)", got)
	}
	if got := present.place(MissingFirst); got != 0 {
		t.Errorf("present place = %d, want 0", got)
	}

	for _, desc := range []bool{false, true} {
		c, err := compare(absent, present, desc, MissingFirst, "k")
		if err != nil {
			t.Fatalf("compare: %v", err)
		}
		if c != -1 {
			t.Errorf("absent vs present (desc=%v) = %d, want -1", desc, c)
		}
	}
}

func TestResolvePath(t *testing.T) {
	rec := map[string]any{
		"user": map[string]any{
			"name": "ann",
			"address": map[string]any{
				"city": "Oslo",
			},
		},
		"flat": 1.0,
	}
	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"flat", 1.0, true},
		{"user.name", "ann", true},
		{"user.address.city", "Oslo", true},
		{"user.missing", nil, false},
		{"user.name.deeper", nil, false}, // string is not an object
		{"nosuch.key", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, found := resolvePath(rec, tt.path)
			if found != tt.found {
				t.Fatalf("resolvePath(%q) found = %v, want %v", tt.path, found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("resolvePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
