// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"provis-cli/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `provis config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage provis configuration",
	Long: `Manage provis configuration.

Configuration is stored in:
  - Linux: ~/.config/provis/config.cue
  - macOS: ~/Library/Application Support/provis/config.cue
  - Windows: %APPDATA%\provis\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE:  runConfigShow,
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE:  runConfigPath,
	})
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keyStyle := PathStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(stdout)

	path, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExistsCheck(path) {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(stdout)

	fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("runtime"), valueStyle.Render(string(cfg.Runtime)))
	shell := cfg.Shell
	if shell == "" {
		shell = "(system default)"
	}
	fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("shell"), valueStyle.Render(shell))

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(stdout, "  file: %s\n", valueStyle.Render(cfg.Log.File))
	if cfg.Log.Dir != "" {
		fmt.Fprintf(stdout, "  dir: %s\n", valueStyle.Render(cfg.Log.Dir))
	} else {
		fmt.Fprintf(stdout, "  dir: %s\n", SubtitleStyle.Render("(not set)"))
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(stdout, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(stdout, "Config file: %s\n", path)

	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
