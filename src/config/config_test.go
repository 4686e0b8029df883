package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"tabmarks/src/config"
)

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "server_url: http://localhost:3000\ndata_dir: " + dir + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ServerURL != "http://localhost:3000" {
		t.Fatalf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.DataDir != dir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("server_url: http://example.test\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TABMARKS_CONFIG", path)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ServerURL != "http://example.test" {
		t.Fatalf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.DataDir == "" {
		t.Fatalf("DataDir default not applied")
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("TABMARKS_CONFIG", "")
	// Point HOME somewhere empty so no real config leaks in.
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ServerURL != "" {
		t.Fatalf("ServerURL = %q, want empty", cfg.ServerURL)
	}
	if cfg.DataDir == "" {
		t.Fatalf("DataDir default not applied")
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server_url: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
