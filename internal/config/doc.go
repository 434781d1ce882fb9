// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the provis user configuration.
//
// Configuration lives in a CUE file under the platform config directory
// (e.g., ~/.config/provis/config.cue on Linux) and is merged over built-in
// defaults via Viper. Every run works with a fully resolved Config; a
// missing config file is not an error.
package config
