// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

const (
	// RuntimeNative runs step scripts in the host system shell.
	RuntimeNative RuntimeMode = "native"
	// RuntimeVirtual runs step scripts in the embedded mvdan/sh interpreter.
	RuntimeVirtual RuntimeMode = "virtual"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultLogFile is the log sink path used when no configuration
	// overrides it: a fixed name relative to the working directory.
	DefaultLogFile = "provis.log"
)

var (
	// ErrInvalidRuntimeMode is returned when a RuntimeMode value is not recognized.
	ErrInvalidRuntimeMode = errors.New("invalid runtime mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

type (
	// RuntimeMode specifies the execution runtime for step scripts.
	RuntimeMode string

	// ColorScheme selects the CLI color scheme.
	ColorScheme string

	// LogConfig configures the run log sink.
	LogConfig struct {
		// File is the log sink path when Dir is unset.
		File string `json:"file" mapstructure:"file"`
		// Dir, when set, switches to per-run timestamped log files inside it.
		Dir string `json:"dir,omitempty" mapstructure:"dir"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// Config holds the application configuration.
	Config struct {
		// Runtime sets the default execution runtime for steps.
		Runtime RuntimeMode `json:"runtime" mapstructure:"runtime"`
		// Shell overrides the system shell used by the native runtime.
		Shell string `json:"shell,omitempty" mapstructure:"shell"`
		// Log configures the run log sink.
		Log LogConfig `json:"log" mapstructure:"log"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Runtime: RuntimeNative,
		Log:     LogConfig{File: DefaultLogFile},
		UI:      UIConfig{ColorScheme: ColorSchemeAuto},
	}
}

// IsValid returns whether the RuntimeMode is a recognized value.
func (m RuntimeMode) IsValid() bool {
	return m == RuntimeNative || m == RuntimeVirtual
}

// IsValid returns whether the ColorScheme is a recognized value.
func (s ColorScheme) IsValid() bool {
	return s == ColorSchemeAuto || s == ColorSchemeDark || s == ColorSchemeLight
}

// Validate checks constraints the CUE schema cannot express once the config
// has been merged over defaults.
func (c *Config) Validate() error {
	if !c.Runtime.IsValid() {
		return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidRuntimeMode, c.Runtime, RuntimeNative, RuntimeVirtual)
	}
	if !c.UI.ColorScheme.IsValid() {
		return fmt.Errorf("%w: %q (must be auto, dark or light)", ErrInvalidColorScheme, c.UI.ColorScheme)
	}
	return nil
}

// ResolveLogPath returns the log sink path for a run starting at now.
// With log.dir set, each run gets its own timestamped file; otherwise the
// fixed log.file path is appended to across runs.
func (c *Config) ResolveLogPath(now time.Time) string {
	if c.Log.Dir != "" {
		return filepath.Join(c.Log.Dir, "provis-"+now.Format("20060102-150405")+".log")
	}
	if c.Log.File != "" {
		return c.Log.File
	}
	return DefaultLogFile
}
