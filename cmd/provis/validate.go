// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"provis-cli/internal/runtime"
	"provis-cli/pkg/provfile"

	"github.com/spf13/cobra"
)

// validateCmd checks a plan without executing it
var validateCmd = &cobra.Command{
	Use:   "validate [provfile]",
	Short: "Validate a provisioning plan without executing it",
	Long: `Validate a provisioning plan without executing it.

The plan is parsed against the provfile schema, and every step script is
checked with the shell parser. Nothing is executed.

Examples:
  provis validate              Validate ./provfile.cue
  provis validate lab.cue      Validate a specific plan`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	path := provfile.DefaultFileName
	if len(args) > 0 {
		path = args[0]
	}

	plan, err := provfile.Parse(path)
	if err != nil {
		fmt.Fprintf(stdout, "%s %s\n", ErrorStyle.Render("✗"), formatErrorForDisplay(err, verbose))
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}

	// Schema validation passed; now check every script's shell syntax.
	invalid := 0
	for _, step := range plan.Steps {
		if err := runtime.CheckScript(step.Script); err != nil {
			fmt.Fprintf(stdout, "%s step %s: %v\n", ErrorStyle.Render("✗"), step.Name, err)
			invalid++
		}
	}

	if invalid > 0 {
		fmt.Fprintf(stdout, "\n%d step script(s) failed the shell syntax check\n", invalid)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}

	fmt.Fprintf(stdout, "%s %s is valid (%d step(s))\n", SuccessStyle.Render("✓"), path, len(plan.Steps))
	return nil
}
