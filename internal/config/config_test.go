package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvDataDir, " /srv/evc ")
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "")

	cfg := Load()
	if cfg.DataDir != "/srv/evc" {
		t.Errorf("DataDir = %q, want /srv/evc", cfg.DataDir)
	}
	if cfg.Database != "" {
		t.Errorf("Database = %q, want empty", cfg.Database)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default text", cfg.LogFormat)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EVC_DB=/tmp/pack.db\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv never overrides variables that are already set.
	t.Setenv(EnvDatabase, "")
	os.Unsetenv(EnvDatabase)

	cfg := Load()
	if cfg.Database != "/tmp/pack.db" {
		t.Errorf("Database = %q, want value from .env", cfg.Database)
	}
}

func TestOverride(t *testing.T) {
	cfg := &Config{DataDir: "/env/dir", LogLevel: "info"}
	cfg.ApplyDefaults()
	cfg.Override("", "/flag/pack.db", "error", "")

	if cfg.DataDir != "/env/dir" {
		t.Errorf("DataDir = %q, empty flag must not override", cfg.DataDir)
	}
	if cfg.Database != "/flag/pack.db" {
		t.Errorf("Database = %q, want flag value", cfg.Database)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}
