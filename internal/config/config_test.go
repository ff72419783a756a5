package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "clear: true\ninterrupt_cancels: false\nlog_file: /tmp/choose.log\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Clear {
		t.Error("expected clear to be true")
	}
	if cfg.InterruptCancels {
		t.Error("expected interrupt_cancels to be false")
	}
	if cfg.LogFile != "/tmp/choose.log" {
		t.Errorf("got log_file %q", cfg.LogFile)
	}
	if cfg.ShowHidden {
		t.Error("show_hidden should keep its default")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "show_hidden: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.InterruptCancels {
		t.Error("interrupt_cancels should default to true")
	}
	if !cfg.ShowHidden {
		t.Error("expected show_hidden to be true")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "clear: [not, a, bool\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestDefaultPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/etc/choose.yaml")

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if got != "/etc/choose.yaml" {
		t.Fatalf("got %q, want %q", got, "/etc/choose.yaml")
	}
}

func TestLoadUsesEnvWhenPathEmpty(t *testing.T) {
	t.Setenv(EnvPath, writeConfig(t, "clear: true\n"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Clear {
		t.Fatal("expected config from $CHOOSE_CONFIG")
	}
}
