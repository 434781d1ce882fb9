// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"strings"
	"testing"
)

func TestVirtualRuntimeEcho(t *testing.T) {
	t.Parallel()

	rt := NewVirtualRuntime()
	if !rt.Available() {
		t.Fatal("virtual runtime should always be available")
	}

	var stdout bytes.Buffer
	result := rt.Execute(&ExecutionContext{
		Script: "echo hello from virtual",
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
	})

	if result.ExitCode != 0 {
		t.Fatalf("Execute() exit code = %d, want 0, error: %v", result.ExitCode, result.Error)
	}
	if got := strings.TrimSpace(stdout.String()); got != "hello from virtual" {
		t.Errorf("Execute() output = %q, want %q", got, "hello from virtual")
	}
}

func TestVirtualRuntimeExitCode(t *testing.T) {
	t.Parallel()

	rt := NewVirtualRuntime()

	result := rt.Execute(&ExecutionContext{
		Script: "exit 7",
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	if result.ExitCode != 7 {
		t.Errorf("Execute() exit code = %d, want 7", result.ExitCode)
	}
	if result.Error != nil {
		t.Errorf("Execute() error = %v, want nil for plain nonzero exit", result.Error)
	}
}

func TestVirtualRuntimeSyntaxError(t *testing.T) {
	t.Parallel()

	rt := NewVirtualRuntime()

	result := rt.Execute(&ExecutionContext{
		Script: "if then fi (",
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	if result.Error == nil {
		t.Error("Execute() error = nil, want syntax error")
	}
	if result.ExitCode == 0 {
		t.Error("Execute() exit code = 0, want nonzero for syntax error")
	}
}

func TestVirtualRuntimeEnv(t *testing.T) {
	t.Parallel()

	rt := NewVirtualRuntime()

	var stdout bytes.Buffer
	result := rt.Execute(&ExecutionContext{
		Script: "echo $PROVIS_TEST_VALUE",
		Env:    map[string]string{"PROVIS_TEST_VALUE": "wired"},
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
	})

	if result.ExitCode != 0 {
		t.Fatalf("Execute() exit code = %d, error: %v", result.ExitCode, result.Error)
	}
	if got := strings.TrimSpace(stdout.String()); got != "wired" {
		t.Errorf("Execute() output = %q, want %q", got, "wired")
	}
}

func TestCheckScript(t *testing.T) {
	t.Parallel()

	if err := CheckScript("echo ok && exit 0"); err != nil {
		t.Errorf("CheckScript(valid) = %v, want nil", err)
	}
	if err := CheckScript("for do done ("); err == nil {
		t.Error("CheckScript(invalid) = nil, want syntax error")
	}
}
