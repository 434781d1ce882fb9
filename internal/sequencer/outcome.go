// SPDX-License-Identifier: MPL-2.0

package sequencer

import (
	"time"
)

// Step outcome constants. Every step in a plan produces exactly one
// outcome, in plan order.
const (
	// OutcomeSkipped means the step's precondition was satisfied and its
	// action was never invoked.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeSucceeded means the step's action ran and exited 0.
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeFailed means the step's action ran and exited nonzero (or
	// could not be started at all).
	OutcomeFailed Outcome = "failed"
)

type (
	// Outcome classifies what happened to one step during a run.
	Outcome string

	// StepResult is the recorded outcome of one step.
	StepResult struct {
		// Name is the step name from the plan.
		Name string
		// Outcome classifies the result.
		Outcome Outcome
		// ExitCode is the action's exit status. Zero for skipped steps.
		ExitCode ExitCode
		// Duration is how long the action ran. Zero for skipped steps.
		Duration time.Duration
	}

	// RunResult is the per-step outcome record of one sequencer invocation,
	// in plan order.
	RunResult struct {
		// PlanName is the name of the executed plan (may be empty).
		PlanName string
		// LogPath is where the run log was written.
		LogPath string
		// StartedAt is when the run began.
		StartedAt time.Time
		// FinishedAt is when the run completed.
		FinishedAt time.Time
		// Steps holds one entry per executed plan step, in plan order.
		Steps []StepResult
	}
)

// Len returns the number of recorded step outcomes.
func (r *RunResult) Len() int {
	return len(r.Steps)
}

// ByName returns the recorded outcome for the named step.
func (r *RunResult) ByName(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// CountByOutcome returns how many steps ended with the given outcome.
func (r *RunResult) CountByOutcome(o Outcome) int {
	n := 0
	for _, s := range r.Steps {
		if s.Outcome == o {
			n++
		}
	}
	return n
}

// HasFailures returns true if any step failed.
func (r *RunResult) HasFailures() bool {
	return r.CountByOutcome(OutcomeFailed) > 0
}
