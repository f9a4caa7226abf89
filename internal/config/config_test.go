package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cgpacalc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvFormat, EnvLogLevel, EnvLogFormat, EnvFailBelow} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "md" || cfg.LogLevel != "warn" || cfg.FailBelow != nil {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "md" {
		t.Errorf("format = %q, want md", cfg.Format)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "format: json\nfail_below: 2.0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Format)
	}
	if cfg.FailBelow == nil || *cfg.FailBelow != 2.0 {
		t.Errorf("fail_below = %v, want 2.0", cfg.FailBelow)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("unset keys should keep defaults, log_level = %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvFailBelow, "2.5")
	path := writeConfig(t, "format: json\nfail_below: 2.0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "yaml" {
		t.Errorf("format = %q, want yaml", cfg.Format)
	}
	if *cfg.FailBelow != 2.5 {
		t.Errorf("fail_below = %v, want 2.5", *cfg.FailBelow)
	}
}

func TestLoadBadEnvNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFailBelow, "low")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric fail-below")
	}
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "format: [\n")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
