// ABOUTME: Tests for jrpccheck configuration loading
// ABOUTME: Covers file parsing, defaults, and validation

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output:
  plain: true
check:
  expect: "response"
  strict_band: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !cfg.Output.Plain {
		t.Error("expected output.plain true")
	}
	if cfg.Check.Expect != "response" {
		t.Errorf("expected check.expect 'response', got %s", cfg.Check.Expect)
	}
	if !cfg.Check.StrictBand {
		t.Error("expected check.strict_band true")
	}
}

func TestLoadConfigDefaultsExpect(t *testing.T) {
	path := writeConfig(t, `
output:
  verbose: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Check.Expect != "auto" {
		t.Errorf("expected check.expect to default to 'auto', got %s", cfg.Check.Expect)
	}
}

func TestLoadConfigRejectsBadExpect(t *testing.T) {
	path := writeConfig(t, `
check:
  expect: "sideways"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid check.expect")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Check.Expect != "auto" {
		t.Errorf("expected 'auto', got %s", cfg.Check.Expect)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}
