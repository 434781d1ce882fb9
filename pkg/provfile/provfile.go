// SPDX-License-Identifier: MPL-2.0

package provfile

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFileName is the provfile name looked up in the working directory
// when no path is given on the command line.
const DefaultFileName = "provfile.cue"

var (
	// ErrDuplicateStepName is returned when two steps share a name.
	ErrDuplicateStepName = errors.New("duplicate step name")
	// ErrBlankStepName is returned when a step name is empty or whitespace-only.
	ErrBlankStepName = errors.New("blank step name")
	// ErrBlankScript is returned when a step script is empty or whitespace-only.
	ErrBlankScript = errors.New("blank step script")
	// ErrInvalidPrecondition is returned when a precondition does not set
	// exactly one check.
	ErrInvalidPrecondition = errors.New("invalid precondition")
)

type (
	// Provfile is a parsed provisioning plan.
	Provfile struct {
		// Name optionally identifies the plan (used in log markers).
		Name string `json:"name,omitempty"`
		// Description optionally describes what the plan provisions.
		Description string `json:"description,omitempty"`
		// Steps is the ordered list of provisioning steps. May be empty.
		Steps []Step `json:"steps"`

		// FilePath is where this provfile was loaded from (set by Parse).
		FilePath string `json:"-"`
	}

	// Step is one unit of work in a provisioning plan.
	Step struct {
		// Name uniquely identifies the step within the plan.
		Name string `json:"name"`
		// Description optionally describes the step for listings.
		Description string `json:"description,omitempty"`
		// Script is the shell text executed when the step runs.
		Script string `json:"script"`
		// WorkDir optionally overrides the working directory for the script.
		// Relative paths are resolved against the provfile location.
		WorkDir string `json:"work_dir,omitempty"`
		// Env contains additional environment variables for the script.
		Env map[string]string `json:"env,omitempty"`
		// Precondition optionally skips the step when its check is satisfied.
		Precondition *Precondition `json:"precondition,omitempty"`
		// ContinueOnFailure controls whether the run proceeds past a nonzero
		// exit from this step. Defaults to true in the schema; best-effort
		// provisioning is the point of the tool.
		ContinueOnFailure bool `json:"continue_on_failure"`
	}

	// Precondition is a coarse idempotence check: when it holds, the step's
	// effect is assumed to already exist and the step is skipped. Exactly
	// one of the fields must be set.
	//
	// Note that filesystem presence is a proxy, not a guarantee: a
	// partially completed install that left the directory behind also
	// satisfies DirExists and will be skipped on re-run.
	Precondition struct {
		// DirExists skips the step when the directory exists.
		DirExists string `json:"dir_exists,omitempty"`
		// FileExists skips the step when the file exists.
		FileExists string `json:"file_exists,omitempty"`
		// CommandExists skips the step when the command is found on PATH.
		CommandExists string `json:"command_exists,omitempty"`
	}
)

// validate checks constraints the CUE schema cannot express: step name
// uniqueness and exactly-one precondition fields.
func (p *Provfile) validate() error {
	seen := make(map[string]int, len(p.Steps))

	for i := range p.Steps {
		s := &p.Steps[i]

		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("steps[%d]: %w", i, ErrBlankStepName)
		}
		if first, dup := seen[s.Name]; dup {
			return fmt.Errorf("steps[%d]: %w: %q (same as steps[%d])", i, ErrDuplicateStepName, s.Name, first)
		}
		seen[s.Name] = i

		if strings.TrimSpace(s.Script) == "" {
			return fmt.Errorf("steps[%d] (%s): %w", i, s.Name, ErrBlankScript)
		}

		if s.Precondition != nil {
			if err := s.Precondition.validate(); err != nil {
				return fmt.Errorf("steps[%d] (%s): %w", i, s.Name, err)
			}
		}
	}

	return nil
}

// FindStep returns the step with the given name, or nil if absent.
func (p *Provfile) FindStep(name string) *Step {
	for i := range p.Steps {
		if p.Steps[i].Name == name {
			return &p.Steps[i]
		}
	}
	return nil
}

func (pc *Precondition) validate() error {
	set := 0
	if pc.DirExists != "" {
		set++
	}
	if pc.FileExists != "" {
		set++
	}
	if pc.CommandExists != "" {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: exactly one of dir_exists, file_exists, command_exists must be set", ErrInvalidPrecondition)
	}
	return nil
}

// String returns a human-readable rendering of the check, for listings and
// log lines (e.g., `dir ~/containernet exists`).
func (pc *Precondition) String() string {
	switch {
	case pc.DirExists != "":
		return fmt.Sprintf("dir %s exists", pc.DirExists)
	case pc.FileExists != "":
		return fmt.Sprintf("file %s exists", pc.FileExists)
	case pc.CommandExists != "":
		return fmt.Sprintf("command %s on PATH", pc.CommandExists)
	default:
		return "none"
	}
}
