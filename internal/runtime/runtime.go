// SPDX-License-Identifier: MPL-2.0

// Package runtime provides the step execution runtime interface and
// implementations. Steps are opaque shell scripts; the runtime's only
// contract is to run them, stream their combined output, and report the
// exit status.
package runtime

import (
	"context"
	"io"
	"sort"
)

// Runtime name constants for the available execution environments.
const (
	// RuntimeNameNative runs scripts in the host system shell.
	RuntimeNameNative = "native"
	// RuntimeNameVirtual runs scripts in the embedded mvdan/sh interpreter.
	RuntimeNameVirtual = "virtual"
)

type (
	// ExecutionContext contains all information needed to execute one step
	// script.
	ExecutionContext struct {
		// Context is the Go context for cancellation.
		Context context.Context
		// Script is the shell text to execute.
		Script string
		// WorkDir is the working directory for the script (empty: inherit).
		WorkDir string
		// Env contains additional environment variables, layered on top of
		// the process environment.
		Env map[string]string
		// Stdout is where to stream standard output.
		Stdout io.Writer
		// Stderr is where to stream standard error.
		Stderr io.Writer
		// Stdin is where to read standard input (may be nil).
		Stdin io.Reader
	}

	// Result contains the result of a script execution.
	Result struct {
		// ExitCode is the exit code of the script.
		ExitCode int
		// Error contains any infrastructure error that occurred. A nonzero
		// ExitCode from a script that ran to completion is not an Error.
		Error error
	}

	// Runtime defines the interface for step execution.
	Runtime interface {
		// Name returns the runtime name.
		Name() string
		// Available returns whether this runtime is usable on the current system.
		Available() bool
		// Execute runs a script and blocks until it finishes.
		Execute(ctx *ExecutionContext) *Result
	}
)

// NewErrorResult creates a Result with exit code 1 and the given error.
func NewErrorResult(err error) *Result {
	return &Result{ExitCode: 1, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// EnvToSlice converts an environment map to KEY=VALUE form, sorted for
// deterministic ordering.
func EnvToSlice(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
