package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestResolvePathDefault tests fallback to .docnav.yaml in the root
func TestResolvePathDefault(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	root := t.TempDir()

	path, err := ResolvePath(root, "")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if want := filepath.Join(root, FileName); path != want {
		t.Errorf("ResolvePath() = %q, want %q", path, want)
	}
}

// TestResolvePathEnvVar tests DOCNAV_CONFIG takes precedence over the root file
func TestResolvePathEnvVar(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "shared.yaml")
	t.Setenv(EnvConfigPath, envPath)

	path, err := ResolvePath(t.TempDir(), "")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if path != envPath {
		t.Errorf("ResolvePath() = %q, want %q", path, envPath)
	}
}

// TestResolvePathExplicitPrecedence tests --config wins over the env var
func TestResolvePathExplicitPrecedence(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "env.yaml"))

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := os.WriteFile(explicit, []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	path, err := ResolvePath(t.TempDir(), explicit)
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if path != explicit {
		t.Errorf("ResolvePath() = %q, want %q", path, explicit)
	}
}

// TestResolvePathExplicitMissing tests a missing --config file is an error
func TestResolvePathExplicitMissing(t *testing.T) {
	_, err := ResolvePath(t.TempDir(), "/nonexistent/docnav.yaml")
	if err == nil {
		t.Fatal("ResolvePath() expected error for missing explicit file")
	}
}
