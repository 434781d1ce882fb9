// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// NativeRuntime executes scripts using the system's default shell.
type NativeRuntime struct {
	// Shell overrides the default shell.
	Shell string
}

// NewNativeRuntime creates a new native runtime.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name.
func (r *NativeRuntime) Name() string {
	return RuntimeNameNative
}

// Available returns whether this runtime is available.
func (r *NativeRuntime) Available() bool {
	_, err := r.getShell()
	return err == nil
}

// Execute runs a script using the system shell, streaming output to the
// context's writers and blocking until the script exits.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	shell, err := r.getShell()
	if err != nil {
		return NewErrorResult(err)
	}

	args := append(shellArgs(shell), ctx.Script)

	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	cmd := exec.CommandContext(execCtx, shell, args...)

	if ctx.WorkDir != "" {
		cmd.Dir = ctx.WorkDir
	}

	cmd.Env = append(os.Environ(), EnvToSlice(ctx.Env)...)

	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr
	cmd.Stdin = ctx.Stdin

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &Result{ExitCode: exitErr.ExitCode()}
		}
		return NewErrorResult(fmt.Errorf("failed to execute script: %w", err))
	}

	return NewSuccessResult()
}

// getShell determines which shell to use.
func (r *NativeRuntime) getShell() (string, error) {
	if r.Shell != "" {
		return r.Shell, nil
	}

	switch runtime.GOOS {
	case "windows":
		if pwsh, err := exec.LookPath("pwsh"); err == nil {
			return pwsh, nil
		}
		if ps, err := exec.LookPath("powershell"); err == nil {
			return ps, nil
		}
		return exec.LookPath("cmd")
	default:
		if shell := os.Getenv("SHELL"); shell != "" {
			return shell, nil
		}
		if bash, err := exec.LookPath("bash"); err == nil {
			return bash, nil
		}
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, nil
		}
		return "", fmt.Errorf("no shell found")
	}
}

// shellArgs returns the arguments that make the shell run an inline script.
func shellArgs(shell string) []string {
	base := filepath.Base(shell)
	base = strings.TrimSuffix(base, ".exe")

	switch base {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		// Assume POSIX shell
		return []string{"-c"}
	}
}
