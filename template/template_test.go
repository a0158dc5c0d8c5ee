package template

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuiltinApply(t *testing.T) {
	tpl := Builtin()
	got := tpl.Apply(map[string]any{
		"part_number": "006R01452",
		"yield":       "5000",
		"junk_field":  "dropped",
	})

	if got["part_number"] != "006R01452" {
		t.Errorf("part_number = %v", got["part_number"])
	}
	if got["yield"] != "5000" {
		t.Errorf("yield = %v", got["yield"])
	}
	if _, ok := got["junk_field"]; ok {
		t.Error("unknown field was not dropped")
	}
	if got["color"] != "" {
		t.Errorf("missing field should keep template default, got %v", got["color"])
	}
	if len(got) != len(tpl.Fields()) {
		t.Errorf("result has %d fields, want %d", len(got), len(tpl.Fields()))
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := map[string]any{"part_number": "A1", "junk": true}
	Builtin().Apply(src)
	if len(src) != 2 {
		t.Errorf("source mutated: %v", src)
	}
}

func TestNormalize(t *testing.T) {
	tpl := Builtin()

	t.Run("single object", func(t *testing.T) {
		results, skipped, err := Normalize(map[string]any{"color": "Cyan"}, tpl)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if len(results) != 1 || len(skipped) != 0 {
			t.Fatalf("results=%d skipped=%d", len(results), len(skipped))
		}
		if results[0]["color"] != "Cyan" {
			t.Errorf("color = %v", results[0]["color"])
		}
	})

	t.Run("array skips non-objects", func(t *testing.T) {
		doc := []any{
			map[string]any{"color": "Black"},
			"not an object",
			map[string]any{"color": "Yellow"},
			42.0,
		}
		results, skipped, err := Normalize(doc, tpl)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("results = %d, want 2", len(results))
		}
		if !reflect.DeepEqual(skipped, []int{1, 3}) {
			t.Errorf("skipped = %v, want [1 3]", skipped)
		}
	})

	t.Run("scalar is an error", func(t *testing.T) {
		if _, _, err := Normalize("nope", tpl); err == nil {
			t.Error("expected error for scalar source")
		}
	})
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpl.yaml")
	content := "sku: \"\"\nprice: 0\nin_stock: false\nnotes:\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tpl, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	want := []string{"sku", "price", "in_stock", "notes"}
	if !reflect.DeepEqual(tpl.Fields(), want) {
		t.Errorf("Fields() = %v, want %v (declaration order)", tpl.Fields(), want)
	}

	got := tpl.Apply(map[string]any{"sku": "X-1", "other": "dropped"})
	if got["sku"] != "X-1" {
		t.Errorf("sku = %v", got["sku"])
	}
	if got["price"] != 0 {
		t.Errorf("price default = %v (%T), want 0", got["price"], got["price"])
	}
	if got["notes"] != "" {
		t.Errorf("null default should become empty string, got %v", got["notes"])
	}
}

func TestLoadYAMLRejectsBadShapes(t *testing.T) {
	dir := t.TempDir()

	seq := filepath.Join(dir, "seq.yaml")
	if err := os.WriteFile(seq, []byte("- a\n- b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAML(seq); err == nil {
		t.Error("expected error for sequence template")
	}

	if _, err := LoadYAML(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
