package library

import (
	"strings"
	"testing"
)

func TestRenderClustered(t *testing.T) {
	var b strings.Builder
	RenderClustered(&b, sampleItems(), false)
	out := b.String()

	for _, want := range []string{
		"Found 4 result(s)",
		"MODEL #1: Phaser 3610",
		"MODEL #2: Phaser 5500",
		"TONERS (2 item(s))",
		"DRUMS (1 item(s))",
		"006R01452",
		"Yield Range: 5000 - 12000 pages",
		"Regions: NA/XE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("clustered output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("color disabled but ANSI codes present")
	}
}

func TestRenderClusteredColor(t *testing.T) {
	var b strings.Builder
	RenderClustered(&b, sampleItems(), true)
	if !strings.Contains(b.String(), ansiBlue) {
		t.Error("expected ANSI-colored part numbers")
	}
	if !strings.Contains(b.String(), ansiCyan) {
		t.Error("expected ANSI-colored toner colors")
	}
}

func TestRenderClusteredEmpty(t *testing.T) {
	var b strings.Builder
	RenderClustered(&b, nil, false)
	if got := strings.TrimSpace(b.String()); got != "No results found." {
		t.Errorf("empty output = %q", got)
	}
}

func TestRenderSimple(t *testing.T) {
	var b strings.Builder
	RenderSimple(&b, sampleItems()[:1], false)
	out := b.String()
	for _, want := range []string{
		"ITEM #1:",
		"006R01452",
		"Printer Model: Phaser 5500",
		"Type: toner",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("simple output missing %q\n%s", want, out)
		}
	}
}

func TestRenderRowTruncatesWideCells(t *testing.T) {
	var b strings.Builder
	long := Item{
		PartNumber:   "PART-NUMBER-THAT-IS-FAR-TOO-LONG",
		Color:        "Black",
		PrinterModel: "M",
	}
	RenderSimple(&b, []Item{long}, false)
	if strings.Contains(b.String(), "PART-NUMBER-THAT-IS-FAR-TOO-LONG") {
		t.Error("expected overlong part number to be truncated")
	}
	if !strings.Contains(b.String(), "PART-NUMBER-THAT-I") {
		t.Error("expected truncated prefix in output")
	}
}
