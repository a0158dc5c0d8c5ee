package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeJSONFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRunSort_WritesSortedOutput(t *testing.T) {
	origKeys := sortKeys
	origDesc := sortDesc
	origMissing := sortMissing
	origIndent := sortIndent
	origDryRun := sortDryRun
	t.Cleanup(func() {
		sortKeys = origKeys
		sortDesc = origDesc
		sortMissing = origMissing
		sortIndent = origIndent
		sortDryRun = origDryRun
	})

	sortKeys = []string{"age"}
	sortDesc = nil
	sortMissing = "last"
	sortIndent = 2
	sortDryRun = false

	input := writeJSONFixture(t, "in.json", `[{"name":"b","age":30},{"name":"a","age":25}]`)
	output := filepath.Join(filepath.Dir(input), "out.json")

	if err := runSort(sortCmd, []string{input, output}); err != nil {
		t.Fatalf("runSort: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if got[0]["name"] != "a" || got[1]["name"] != "b" {
		t.Errorf("output not sorted by age: %v", got)
	}
}

func TestRunSort_OutputMayEqualInput(t *testing.T) {
	origKeys := sortKeys
	origDesc := sortDesc
	origMissing := sortMissing
	origDryRun := sortDryRun
	t.Cleanup(func() {
		sortKeys = origKeys
		sortDesc = origDesc
		sortMissing = origMissing
		sortDryRun = origDryRun
	})

	sortKeys = []string{"n"}
	sortDesc = nil
	sortMissing = "last"
	sortDryRun = false

	path := writeJSONFixture(t, "data.json", `[{"n":2},{"n":1}]`)
	if err := runSort(sortCmd, []string{path, path}); err != nil {
		t.Fatalf("runSort: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got[0]["n"] != 1.0 {
		t.Errorf("in-place sort failed: %v", got)
	}
}

func TestRunSort_DryRunWritesNothing(t *testing.T) {
	origKeys := sortKeys
	origMissing := sortMissing
	origDryRun := sortDryRun
	t.Cleanup(func() {
		sortKeys = origKeys
		sortMissing = origMissing
		sortDryRun = origDryRun
	})

	sortKeys = []string{"n"}
	sortMissing = "last"
	sortDryRun = true

	input := writeJSONFixture(t, "in.json", `[{"n":2},{"n":1}]`)
	output := filepath.Join(filepath.Dir(input), "out.json")

	if err := runSort(sortCmd, []string{input, output}); err != nil {
		t.Fatalf("runSort: %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("dry run wrote the output file")
	}
}

func TestRunSort_MissingFileFails(t *testing.T) {
	origKeys := sortKeys
	origMissing := sortMissing
	origDryRun := sortDryRun
	t.Cleanup(func() {
		sortKeys = origKeys
		sortMissing = origMissing
		sortDryRun = origDryRun
	})

	sortKeys = []string{"n"}
	sortMissing = "last"
	sortDryRun = false

	dir := t.TempDir()
	err := runSort(sortCmd, []string{filepath.Join(dir, "nope.json"), filepath.Join(dir, "out.json")})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}
