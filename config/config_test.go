package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsZeroValue(t *testing.T) {
	t.Setenv("HFDATA_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LibraryFile != "" || cfg.PageSize != 0 {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
	if cfg.EffectivePageSize() != DefaultPageSize {
		t.Errorf("EffectivePageSize = %d, want %d", cfg.EffectivePageSize(), DefaultPageSize)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HFDATA_CONFIG_DIR", t.TempDir())

	want := Config{LibraryFile: "/data/library.json", PageSize: 10}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
	if got.EffectivePageSize() != 10 {
		t.Errorf("EffectivePageSize = %d, want 10", got.EffectivePageSize())
	}
}

func TestLoad_ConfigFileIsDirectory(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HFDATA_CONFIG_DIR", tmp)

	cfgPath := filepath.Join(tmp, "config.json")
	if err := os.Mkdir(cfgPath, 0o755); err != nil {
		t.Fatalf("setup config dir: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatalf("expected read error when config file is a directory")
	} else if os.IsNotExist(err) {
		t.Fatalf("expected non-ENOENT error, got %v", err)
	}
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	t.Setenv("HFDATA_CONFIG_DIR", t.TempDir())
	if err := Delete(); err != nil {
		t.Fatalf("Delete on missing file: %v", err)
	}
}
