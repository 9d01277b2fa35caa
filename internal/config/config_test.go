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
	if cfg.Name != "contactbook" {
		t.Errorf("expected Name=contactbook, got %s", cfg.Name)
	}
	if cfg.Session.BirthdayWindowDays != 7 {
		t.Errorf("expected BirthdayWindowDays=7, got %d", cfg.Session.BirthdayWindowDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("CONTACTS_BIRTHDAY_WINDOW", "")
	t.Setenv("CONTACTS_LOG_LEVEL", "")
	t.Setenv("CONTACTS_LOG_FILE", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Session.Prompt = "> "
	cfg.Session.BirthdayWindowDays = 14
	cfg.Logging.Categories = map[string]bool{"session": false}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Session.Prompt != "> " {
		t.Errorf("expected Prompt=\"> \", got %q", loaded.Session.Prompt)
	}
	if loaded.Session.BirthdayWindowDays != 14 {
		t.Errorf("expected BirthdayWindowDays=14, got %d", loaded.Session.BirthdayWindowDays)
	}
	if loaded.Logging.IsCategoryEnabled("session") {
		t.Error("expected session category disabled")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("CONTACTS_BIRTHDAY_WINDOW", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Session.BirthdayWindowDays != 7 {
		t.Errorf("expected defaults, got window %d", cfg.Session.BirthdayWindowDays)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("CONTACTS_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected default Format=console, got %s", cfg.Logging.Format)
	}
	if cfg.Session.Prompt == "" {
		t.Error("expected default prompt to survive a partial file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative window", func(c *Config) { c.Session.BirthdayWindowDays = -1 }},
		{"window too large", func(c *Config) { c.Session.BirthdayWindowDays = MaxBirthdayWindowDays + 1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	c := LoggingConfig{}
	if !c.IsCategoryEnabled("session") {
		t.Error("nil categories should enable everything")
	}
	c.Categories = map[string]bool{"boot": false}
	if c.IsCategoryEnabled("boot") {
		t.Error("expected boot disabled")
	}
	if !c.IsCategoryEnabled("session") {
		t.Error("unlisted category should be enabled")
	}
}
