// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// withConfigDir redirects the config directory for the duration of a test.
// Tests using it cannot run in parallel: the override is package state.
func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	configDirOverride = dir
	t.Cleanup(func() { configDirOverride = "" })
}

func withConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	withConfigDir(t, dir)
	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	withConfigDir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Runtime != RuntimeNative {
		t.Errorf("Runtime = %q, want %q", cfg.Runtime, RuntimeNative)
	}
	if cfg.Log.File != DefaultLogFile {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, DefaultLogFile)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
}

func TestLoadMergesConfigFileOverDefaults(t *testing.T) {
	withConfigFile(t, `
runtime: "virtual"
log: dir: "/var/log/provis"
ui: verbose: true
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Runtime != RuntimeVirtual {
		t.Errorf("Runtime = %q, want %q", cfg.Runtime, RuntimeVirtual)
	}
	if cfg.Log.Dir != "/var/log/provis" {
		t.Errorf("Log.Dir = %q, want /var/log/provis", cfg.Log.Dir)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	// Untouched fields keep their defaults.
	if cfg.Log.File != DefaultLogFile {
		t.Errorf("Log.File = %q, want default %q", cfg.Log.File, DefaultLogFile)
	}
}

func TestLoadRejectsUnknownRuntime(t *testing.T) {
	withConfigFile(t, `runtime: "container"`)

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil error, want schema violation for unknown runtime")
	}
}

func TestLoadRejectsInvalidCUE(t *testing.T) {
	withConfigFile(t, `runtime: "native`)

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil error, want syntax error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}

	cfg.Runtime = "podman"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRuntimeMode) {
		t.Errorf("Validate() = %v, want ErrInvalidRuntimeMode", err)
	}

	cfg = DefaultConfig()
	cfg.UI.ColorScheme = "sepia"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Validate() = %v, want ErrInvalidColorScheme", err)
	}
}
