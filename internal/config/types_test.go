// SPDX-License-Identifier: MPL-2.0

package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRuntimeModeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode RuntimeMode
		want bool
	}{
		{RuntimeNative, true},
		{RuntimeVirtual, true},
		{"container", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.mode.IsValid(); got != tt.want {
			t.Errorf("RuntimeMode(%q).IsValid() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestResolveLogPath(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)

	cfg := DefaultConfig()
	if got := cfg.ResolveLogPath(now); got != DefaultLogFile {
		t.Errorf("ResolveLogPath() = %q, want %q", got, DefaultLogFile)
	}

	cfg.Log.File = "custom.log"
	if got := cfg.ResolveLogPath(now); got != "custom.log" {
		t.Errorf("ResolveLogPath() = %q, want custom.log", got)
	}

	cfg.Log.Dir = "/var/log/provis"
	got := cfg.ResolveLogPath(now)
	if filepath.Dir(got) != "/var/log/provis" {
		t.Errorf("ResolveLogPath() dir = %q, want /var/log/provis", filepath.Dir(got))
	}
	if !strings.Contains(got, "20260831-143005") {
		t.Errorf("ResolveLogPath() = %q, want timestamped name", got)
	}
}
