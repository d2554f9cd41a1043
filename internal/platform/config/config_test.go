package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"vitals/internal/platform/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "vitals.yaml")
	data := "default_days: 30\nlog_level: debug\npretty: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultDays != 30 || cfg.LogLevel != "debug" || !cfg.Pretty {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "vitals.yaml")
	if err := os.WriteFile(path, []byte("pretty: true\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultDays != 7 || cfg.LogLevel != "info" {
		t.Fatalf("unset keys must keep defaults, got %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Parallel()
	cases := []string{
		"default_days: 0\n",
		"default_days: 120\n",
		"log_level: loud\n",
	}
	for _, data := range cases {
		path := filepath.Join(t.TempDir(), "vitals.yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := config.Load(path); err == nil {
			t.Fatalf("config %q should fail validation", data)
		}
	}
}

func TestLoadMissingNamedFileFails(t *testing.T) {
	t.Parallel()
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("a named but missing config file is an error")
	}
}
