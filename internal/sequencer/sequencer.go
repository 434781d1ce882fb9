// SPDX-License-Identifier: MPL-2.0

package sequencer

import (
	"context"
	"path/filepath"
	"time"

	"provis-cli/internal/logsink"
	"provis-cli/internal/runtime"
	"provis-cli/pkg/provfile"
)

// Sequencer executes provisioning plans one step at a time. The caller
// constructs the log sink; sink construction is the only fatal failure in
// the system, so by the time a Sequencer exists the run cannot abort.
type Sequencer struct {
	rt   runtime.Runtime
	sink *logsink.Sink
}

// New creates a sequencer that executes steps with rt and reports into sink.
func New(rt runtime.Runtime, sink *logsink.Sink) *Sequencer {
	return &Sequencer{rt: rt, sink: sink}
}

// Run executes the plan in order and returns one outcome per step.
//
// A satisfied precondition skips the step without invoking its action. A
// nonzero exit records a failure and the run proceeds to the next step;
// there are no retries and no per-step timeout. The only way a plan stops
// early is a step that explicitly sets continue_on_failure to false.
//
// Cancelling ctx does not abort the loop directly: the runtime passes ctx
// to each action, so after cancellation every remaining action fails fast
// and is recorded as failed, preserving the one-outcome-per-step record.
func (s *Sequencer) Run(ctx context.Context, plan *provfile.Provfile) *RunResult {
	logger := s.sink.Logger()

	result := &RunResult{
		PlanName:  plan.Name,
		LogPath:   s.sink.Path(),
		StartedAt: time.Now(),
		Steps:     make([]StepResult, 0, len(plan.Steps)),
	}

	baseDir := ""
	if plan.FilePath != "" {
		baseDir = filepath.Dir(plan.FilePath)
	}

	logger.Info("provisioning run starting", "plan", planLabel(plan), "steps", len(plan.Steps))

	for i := range plan.Steps {
		step := &plan.Steps[i]

		if EvaluatePrecondition(step.Precondition, baseDir) {
			logger.Info("step skipped", "step", step.Name, "precondition", step.Precondition.String())
			result.Steps = append(result.Steps, StepResult{
				Name:    step.Name,
				Outcome: OutcomeSkipped,
			})
			continue
		}

		logger.Info("step starting", "step", step.Name)

		started := time.Now()
		res := s.rt.Execute(&runtime.ExecutionContext{
			Context: ctx,
			Script:  step.Script,
			WorkDir: stepWorkDir(step, baseDir),
			Env:     step.Env,
			Stdout:  s.sink.Writer(),
			Stderr:  s.sink.Writer(),
		})
		elapsed := time.Since(started)

		code := ExitCode(res.ExitCode)
		if code.IsSuccess() {
			logger.Info("step succeeded", "step", step.Name, "duration", elapsed.Round(time.Millisecond))
			result.Steps = append(result.Steps, StepResult{
				Name:     step.Name,
				Outcome:  OutcomeSucceeded,
				Duration: elapsed,
			})
			continue
		}

		if res.Error != nil {
			logger.Error("step failed", "step", step.Name, "exit_code", code, "err", res.Error)
		} else {
			logger.Error("step failed", "step", step.Name, "exit_code", code)
		}
		result.Steps = append(result.Steps, StepResult{
			Name:     step.Name,
			Outcome:  OutcomeFailed,
			ExitCode: code,
			Duration: elapsed,
		})

		if !step.ContinueOnFailure {
			logger.Error("stopping run: step does not allow continuing past failure", "step", step.Name)
			break
		}
	}

	result.FinishedAt = time.Now()

	logger.Info("provisioning run complete",
		"plan", planLabel(plan),
		"succeeded", result.CountByOutcome(OutcomeSucceeded),
		"skipped", result.CountByOutcome(OutcomeSkipped),
		"failed", result.CountByOutcome(OutcomeFailed),
		"log", s.sink.Path(),
	)

	return result
}

// stepWorkDir resolves a step's working directory against the provfile
// location, matching how step preconditions resolve paths.
func stepWorkDir(step *provfile.Step, baseDir string) string {
	if step.WorkDir == "" {
		return ""
	}
	return resolvePath(step.WorkDir, baseDir)
}

func planLabel(plan *provfile.Provfile) string {
	if plan.Name != "" {
		return plan.Name
	}
	if plan.FilePath != "" {
		return plan.FilePath
	}
	return "(unnamed)"
}
