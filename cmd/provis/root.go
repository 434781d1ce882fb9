// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for provis.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"provis-cli/internal/config"
	"provis-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "provis",
		Short: "A best-effort host provisioning sequencer",
		Long: TitleStyle.Render("provis") + SubtitleStyle.Render(" - A best-effort host provisioning sequencer") + `

provis runs an ordered plan of installation steps, skipping steps whose
effect already exists and carrying on past individual failures. All output
is duplicated to a persistent log file and the console, and the run always
completes the remaining steps; operators inspect the log and the summary,
not the exit code.

Plans are defined in 'provfile' files using CUE format.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'provis init' to create an example provfile
  2. Edit the steps to match your hosts
  3. Execute the plan with: provis run

` + SubtitleStyle.Render("Examples:") + `
  provis run                Execute ./provfile.cue
  provis run lab.cue        Execute a specific plan
  provis validate           Check the plan without executing it
  provis list               Show the plan's steps
  provis config show        Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/provis/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig applies the --config flag before any command loads
// configuration.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
}

// loadConfig loads the user configuration, folding the --verbose flag into
// the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.UI.Verbose = true
	}
	return cfg, nil
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
