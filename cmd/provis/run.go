// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"provis-cli/internal/config"
	"provis-cli/internal/issue"
	"provis-cli/internal/logsink"
	"provis-cli/internal/runtime"
	"provis-cli/internal/sequencer"
	"provis-cli/pkg/provfile"

	"github.com/spf13/cobra"
)

var (
	runLogFile     string
	runRuntimeName string
	runDryRun      bool

	// runCmd executes a provisioning plan
	runCmd = &cobra.Command{
		Use:   "run [provfile]",
		Short: "Execute a provisioning plan",
		Long: `Execute a provisioning plan, one step at a time.

Steps whose precondition is already satisfied are skipped. A step that
exits nonzero is recorded and logged as an error, and the run proceeds to
the next step regardless; there are no retries. All output goes to both
the console and the run log file.

The process exits 0 even when steps failed. Inspect the run log for ERROR
markers and the end-of-run summary for outcomes. Only a plan that cannot
be loaded, or a log file that cannot be opened, makes the command fail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}
)

func init() {
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "write the run log to this file (overrides config)")
	runCmd.Flags().StringVar(&runRuntimeName, "runtime", "", "execution runtime: native or virtual (overrides config)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "evaluate preconditions and print the plan without executing")
}

func runRun(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if runDryRun {
		printDryRun(cmd.OutOrStdout(), plan)
		return nil
	}

	rt, err := selectRuntime(cfg)
	if err != nil {
		return err
	}
	if !rt.Available() {
		return fmt.Errorf("runtime %q is not available on this system", rt.Name())
	}

	logPath := runLogFile
	if logPath == "" {
		logPath = cfg.ResolveLogPath(time.Now())
	}

	// The sink is the only fatal dependency: no log, no run.
	sink, err := logsink.New(logPath, cmd.OutOrStdout())
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("open log sink").
			WithResource(logPath).
			WithSuggestion("Check that the log directory is writable").
			WithSuggestion("Use --log-file to pick a different location").
			Wrap(err).
			BuildError()
	}
	defer sink.Close()

	result := sequencer.New(rt, sink).Run(cmd.Context(), plan)

	printSummary(cmd.OutOrStdout(), result)

	// Step failures are reported, not propagated: the run itself succeeded.
	return nil
}

// loadPlan parses the provfile named on the command line (default
// ./provfile.cue), wrapping load errors with actionable context.
func loadPlan(args []string) (*provfile.Provfile, error) {
	path := provfile.DefaultFileName
	if len(args) > 0 {
		path = args[0]
	}

	plan, err := provfile.Parse(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load provfile").
			WithResource(path).
			WithSuggestion("Run 'provis init' to create an example provfile").
			WithSuggestion("Run 'provis validate' for detailed schema errors").
			Wrap(err).
			BuildError()
	}
	return plan, nil
}

// selectRuntime picks the execution runtime: the --runtime flag wins over
// the configured default.
func selectRuntime(cfg *config.Config) (runtime.Runtime, error) {
	mode := config.RuntimeMode(runRuntimeName)
	if runRuntimeName == "" {
		mode = cfg.Runtime
	}

	switch mode {
	case config.RuntimeNative:
		return &runtime.NativeRuntime{Shell: cfg.Shell}, nil
	case config.RuntimeVirtual:
		return runtime.NewVirtualRuntime(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidRuntimeMode, mode)
	}
}

// printDryRun shows what a run would do: which steps would be skipped and
// which would execute, without invoking anything.
func printDryRun(w io.Writer, plan *provfile.Provfile) {
	baseDir := ""
	if plan.FilePath != "" {
		baseDir = filepath.Dir(plan.FilePath)
	}

	fmt.Fprintln(w, TitleStyle.Render("Dry run: ")+planTitle(plan))
	for _, step := range plan.Steps {
		if sequencer.EvaluatePrecondition(step.Precondition, baseDir) {
			fmt.Fprintf(w, "  %s %s (%s)\n",
				WarningStyle.Render("skip"), step.Name, step.Precondition.String())
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", SuccessStyle.Render("run "), step.Name)
	}
	fmt.Fprintf(w, "%d step(s); nothing was executed\n", len(plan.Steps))
}

// printSummary renders the end-of-run outcome table.
func printSummary(w io.Writer, result *sequencer.RunResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Run summary"))

	for _, s := range result.Steps {
		switch s.Outcome {
		case sequencer.OutcomeSkipped:
			fmt.Fprintf(w, "  %s %s (precondition satisfied)\n",
				WarningStyle.Render("↷"), s.Name)
		case sequencer.OutcomeSucceeded:
			fmt.Fprintf(w, "  %s %s (%s)\n",
				SuccessStyle.Render("✓"), s.Name, s.Duration.Round(time.Millisecond))
		case sequencer.OutcomeFailed:
			fmt.Fprintf(w, "  %s %s (exit code %s)\n",
				ErrorStyle.Render("✗"), s.Name, s.ExitCode)
		}
	}

	fmt.Fprintf(w, "\n%d succeeded, %d skipped, %d failed\n",
		result.CountByOutcome(sequencer.OutcomeSucceeded),
		result.CountByOutcome(sequencer.OutcomeSkipped),
		result.CountByOutcome(sequencer.OutcomeFailed),
	)
	fmt.Fprintf(w, "Full log: %s\n", PathStyle.Render(result.LogPath))

	if result.HasFailures() {
		fmt.Fprintln(w, WarningStyle.Render("Some steps failed; see the log for details."))
	}
}

func planTitle(plan *provfile.Provfile) string {
	if plan.Name != "" {
		return plan.Name
	}
	return plan.FilePath
}
