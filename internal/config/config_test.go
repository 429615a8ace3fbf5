package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.DataDir != "data" {
		t.Errorf("data_dir = %q, want %q", cfg.DataDir, "data")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.yaml")
	content := "addr: \":9090\"\ndata_dir: /var/lib/issues\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.DataDir != "/var/lib/issues" {
		t.Errorf("data_dir = %q, want %q", cfg.DataDir, "/var/lib/issues")
	}
	// Unset fields keep their defaults.
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("base_url = %q, want default", cfg.BaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ISSUES_ADDR", ":7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("addr = %q, want %q", cfg.Addr, ":7070")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
