package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logbay/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsForMissingFile(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Server.Bind != "127.0.0.1:5180" {
		t.Fatalf("unexpected default bind: %q", cfg.Server.Bind)
	}
	if cfg.Tail.MaxLines != 1000 {
		t.Fatalf("unexpected default max_lines: %d", cfg.Tail.MaxLines)
	}
	if cfg.Server.AuthMode != "none" {
		t.Fatalf("unexpected default auth_mode: %q", cfg.Server.AuthMode)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := writeConfig(t, `
[server]
bind = "0.0.0.0:9000"
base_url = "https://node.example.org/"
base_path = "/logs"

[catalog]
services_file = "/tmp/services.json"
service_log_root = "/tmp/logs"

[tail]
max_lines = 50
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.Server.Bind != "0.0.0.0:9000" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.Tail.MaxLines != 50 {
		t.Fatalf("unexpected max_lines: %d", cfg.Tail.MaxLines)
	}

	base, err := cfg.BaseURL()
	if err != nil {
		t.Fatalf("base url: %v", err)
	}
	if got := base.String(); got != "https://node.example.org/logs" {
		t.Fatalf("unexpected base url: %q", got)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LOGBAY_BASE_URL", "https://override.example.org/")
	t.Setenv("LOGBAY_SERVICES_FILE", "/tmp/override-services.json")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Server.BaseURL != "https://override.example.org/" {
		t.Fatalf("env override not applied: %q", cfg.Server.BaseURL)
	}
	if cfg.Catalog.ServicesFile != "/tmp/override-services.json" {
		t.Fatalf("env override not applied: %q", cfg.Catalog.ServicesFile)
	}
}

func TestLoadRejectsInvalidAuthMode(t *testing.T) {
	path := writeConfig(t, `
[server]
auth_mode = "basic"
`)
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "auth_mode") {
		t.Fatalf("expected auth_mode validation error, got %v", err)
	}
}

func TestLoadRequiresTokenForTokenMode(t *testing.T) {
	path := writeConfig(t, `
[server]
auth_mode = "token"
`)
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "api_token") {
		t.Fatalf("expected api_token validation error, got %v", err)
	}
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	path := writeConfig(t, `
[server]
base_url = "/just/a/path"
`)
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Fatalf("expected base_url validation error, got %v", err)
	}
}

func TestLoadRejectsNegativeMaxLines(t *testing.T) {
	path := writeConfig(t, `
[tail]
max_lines = -5
`)
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "max_lines") {
		t.Fatalf("expected max_lines validation error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Tail.MaxLines != 1000 {
		t.Fatalf("unexpected sample max_lines: %d", cfg.Tail.MaxLines)
	}
}
