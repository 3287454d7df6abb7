package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultFile != "data.csv" {
		t.Errorf("expected DefaultFile=data.csv, got %s", cfg.DefaultFile)
	}
	if cfg.Extension != ".csv" {
		t.Errorf("expected Extension=.csv, got %s", cfg.Extension)
	}
	if cfg.View != ViewBlock {
		t.Errorf("expected View=block, got %s", cfg.View)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("CSVSIFT_DEFAULT_FILE", "")
	t.Setenv("CSVSIFT_VIEW", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DefaultFile = "people.csv"
	cfg.View = ViewTable

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DefaultFile != "people.csv" {
		t.Errorf("expected DefaultFile=people.csv, got %s", loaded.DefaultFile)
	}
	if loaded.View != ViewTable {
		t.Errorf("expected View=table, got %s", loaded.View)
	}
}

func TestConfig_LoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("CSVSIFT_DEFAULT_FILE", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultFile != "data.csv" {
		t.Errorf("expected defaults, got DefaultFile=%s", cfg.DefaultFile)
	}
}

func TestConfig_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("view: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.View = "grid"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown view")
	}

	cfg = DefaultConfig()
	cfg.Extension = "csv"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for extension without dot")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown log level")
	}
}
