package fieldset

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestParseSet(t *testing.T) {
	tests := []struct {
		arg     string
		field   string
		value   string
		wantErr bool
	}{
		{"yield=5000", "yield", "5000", false},
		{"chip_type=", "chip_type", "", false},
		{"note=a=b", "note", "a=b", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			field, value, err := ParseSet(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSet(%q): %v", tt.arg, err)
			}
			if field != tt.field || value != tt.value {
				t.Errorf("ParseSet(%q) = (%q, %q), want (%q, %q)", tt.arg, field, value, tt.field, tt.value)
			}
		})
	}
}

func TestApplyList(t *testing.T) {
	in := decode(t, `[
		{"printer_model":"Phaser 5500","yield":"5000","color":"Black"},
		{"printer_model":"Phaser 3610","yield":"9000"},
		{"printer_model":"Phaser 5500","yield":"6000"}
	]`)
	got, matches, err := Apply(in, Update{
		Match: "Phaser 5500",
		Set:   map[string]string{"yield": "7500"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if matches != 2 {
		t.Errorf("matches = %d, want 2", matches)
	}
	list := got.([]any)
	if list[0].(map[string]any)["yield"] != "7500" {
		t.Errorf("first match not updated: %v", list[0])
	}
	if list[1].(map[string]any)["yield"] != "9000" {
		t.Errorf("non-match was updated: %v", list[1])
	}
	if list[2].(map[string]any)["yield"] != "7500" {
		t.Errorf("second match not updated: %v", list[2])
	}
}

func TestApplyOnlyOverwritesExistingFields(t *testing.T) {
	in := decode(t, `[{"printer_model":"P","yield":"1"}]`)
	got, matches, err := Apply(in, Update{
		Match: "P",
		Set:   map[string]string{"yield": "2", "brand_new": "x"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if matches != 1 {
		t.Fatalf("matches = %d, want 1", matches)
	}
	rec := got.([]any)[0].(map[string]any)
	if rec["yield"] != "2" {
		t.Errorf("yield = %v", rec["yield"])
	}
	if _, ok := rec["brand_new"]; ok {
		t.Error("update added a field the record did not have")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := decode(t, `[{"printer_model":"P","yield":"1"}]`)
	snapshot := decode(t, `[{"printer_model":"P","yield":"1"}]`)
	if _, _, err := Apply(in, Update{Match: "P", Set: map[string]string{"yield": "2"}}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reflect.DeepEqual(in, snapshot) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestApplySingleObjectKeepsShape(t *testing.T) {
	in := decode(t, `{"printer_model":"P","yield":"1"}`)
	got, matches, err := Apply(in, Update{Match: "P", Set: map[string]string{"yield": "2"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if matches != 1 {
		t.Errorf("matches = %d, want 1", matches)
	}
	rec, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("single object became %T", got)
	}
	if rec["yield"] != "2" {
		t.Errorf("yield = %v", rec["yield"])
	}
}

func TestApplyCustomMatchField(t *testing.T) {
	in := decode(t, `[{"part_number":"A1","yield":"1"},{"part_number":"A2","yield":"1"}]`)
	_, matches, err := Apply(in, Update{
		MatchField: "part_number",
		Match:      "A2",
		Set:        map[string]string{"yield": "9"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if matches != 1 {
		t.Errorf("matches = %d, want 1", matches)
	}
}

func TestApplyValidation(t *testing.T) {
	in := decode(t, `[]`)
	if _, _, err := Apply(in, Update{Match: "", Set: map[string]string{"a": "b"}}); err == nil {
		t.Error("expected error for empty match")
	}
	if _, _, err := Apply(in, Update{Match: "P"}); err == nil {
		t.Error("expected error for empty set")
	}
}

func TestApplyPassesThroughNonObjects(t *testing.T) {
	in := decode(t, `[{"printer_model":"P","yield":"1"},"stray"]`)
	got, matches, err := Apply(in, Update{Match: "P", Set: map[string]string{"yield": "2"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if matches != 1 {
		t.Errorf("matches = %d, want 1", matches)
	}
	if got.([]any)[1] != "stray" {
		t.Errorf("non-object element changed: %v", got.([]any)[1])
	}
}
