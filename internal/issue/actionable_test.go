// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load provfile"},
			want: "failed to load provfile",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load provfile", Resource: "./provfile.cue"},
			want: "failed to load provfile: ./provfile.cue",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "open log sink",
				Resource:  "/var/log/provis.log",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to open log sink: /var/log/provis.log: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContextBuilder(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("load provfile").
		WithResource("plan.cue").
		WithSuggestion("Run 'provis init' to create one").
		Wrap(cause).
		BuildError()

	if err == nil {
		t.Fatal("BuildError() returned nil")
	}
	if !errors.Is(err, cause) {
		t.Error("built error does not wrap the cause")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("built error is not an ActionableError")
	}
	if !strings.Contains(ae.Format(false), "provis init") {
		t.Errorf("Format() missing suggestion: %q", ae.Format(false))
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestFormatVerboseIncludesChain(t *testing.T) {
	t.Parallel()

	inner := errors.New("root cause")
	ae := WrapWithOperation(inner, "validate plan")

	out := ae.Format(true)
	if !strings.Contains(out, "Error chain:") {
		t.Errorf("verbose Format() missing error chain: %q", out)
	}
	if !strings.Contains(out, "root cause") {
		t.Errorf("verbose Format() missing root cause: %q", out)
	}
}

func TestWrapWithOperationNil(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}
