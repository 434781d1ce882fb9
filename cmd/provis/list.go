// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd shows the steps of a plan
var listCmd = &cobra.Command{
	Use:   "list [provfile]",
	Short: "List the steps of a provisioning plan",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	plan, err := loadPlan(args)
	if err != nil {
		return err
	}

	title := planTitle(plan)
	fmt.Fprintln(stdout, TitleStyle.Render(title))
	if plan.Description != "" {
		fmt.Fprintln(stdout, SubtitleStyle.Render(plan.Description))
	}
	fmt.Fprintln(stdout)

	for i, step := range plan.Steps {
		fmt.Fprintf(stdout, "%2d. %s", i+1, PathStyle.Render(step.Name))
		if step.Description != "" {
			fmt.Fprintf(stdout, "  %s", SubtitleStyle.Render(step.Description))
		}
		fmt.Fprintln(stdout)
		if step.Precondition != nil {
			fmt.Fprintf(stdout, "      skip when: %s\n", step.Precondition.String())
		}
		if !step.ContinueOnFailure {
			fmt.Fprintf(stdout, "      %s\n", WarningStyle.Render("stops the run on failure"))
		}
	}

	fmt.Fprintf(stdout, "\n%d step(s)\n", len(plan.Steps))
	return nil
}
