// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRuntime executes scripts using the embedded mvdan/sh interpreter.
// External commands in the script still resolve against the host PATH; the
// interpreter replaces only the shell itself, which makes runs reproducible
// across hosts with exotic login shells.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a new virtual runtime.
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string {
	return RuntimeNameVirtual
}

// Available returns whether this runtime is available.
func (r *VirtualRuntime) Available() bool {
	// The interpreter is built in.
	return true
}

// Execute runs a script in the embedded interpreter, streaming output to
// the context's writers and blocking until the script exits.
func (r *VirtualRuntime) Execute(ctx *ExecutionContext) *Result {
	prog, err := parseScript(ctx.Script)
	if err != nil {
		return NewErrorResult(err)
	}

	environ := append(os.Environ(), EnvToSlice(ctx.Env)...)

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(ctx.Stdin, ctx.Stdout, ctx.Stderr),
	}
	if ctx.WorkDir != "" {
		opts = append(opts, interp.Dir(ctx.WorkDir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to create interpreter: %w", err))
	}

	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	if err := runner.Run(execCtx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &Result{ExitCode: int(exitStatus)}
		}
		return NewErrorResult(fmt.Errorf("script execution failed: %w", err))
	}

	return NewSuccessResult()
}

// CheckScript parses a script with the shell parser and reports syntax
// errors without executing anything. Used by `provis validate`.
func CheckScript(script string) error {
	_, err := parseScript(script)
	return err
}

func parseScript(script string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return nil, fmt.Errorf("script syntax error: %w", err)
	}
	return prog, nil
}
