// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"provis-cli/pkg/provfile"

	"github.com/spf13/cobra"
)

func TestExampleProvfileParses(t *testing.T) {
	t.Parallel()

	plan, err := provfile.ParseBytes([]byte(exampleProvfile), "provfile.cue")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if plan.Name != "lab-host" {
		t.Errorf("Name = %q, want %q", plan.Name, "lab-host")
	}
	if len(plan.Steps) != 7 {
		t.Errorf("len(Steps) = %d, want 7", len(plan.Steps))
	}

	// The first step runs unconditionally; later ones carry skip checks.
	if plan.Steps[0].Precondition != nil {
		t.Errorf("step %q should have no precondition", plan.Steps[0].Name)
	}
	step := plan.FindStep("clone-containernet")
	if step == nil {
		t.Fatal("FindStep(clone-containernet) = nil")
	}
	if step.Precondition == nil || step.Precondition.DirExists != "~/containernet" {
		t.Errorf("clone-containernet precondition = %+v, want dir_exists ~/containernet", step.Precondition)
	}

	// The schema default applies to every step that doesn't set the field.
	for _, s := range plan.Steps {
		if !s.ContinueOnFailure {
			t.Errorf("step %q: ContinueOnFailure = false, want default true", s.Name)
		}
	}
}

func TestRunInit(t *testing.T) {
	// Not parallel: subtests mutate the package-level initForce var.

	newInitCmd := func() (*cobra.Command, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		cmd := &cobra.Command{}
		cmd.SetOut(buf)
		return cmd, buf
	}

	t.Run("creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "provfile.cue")
		cmd, buf := newInitCmd()

		if err := runInit(cmd, []string{path}); err != nil {
			t.Fatalf("runInit() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != exampleProvfile {
			t.Error("written file does not match the template")
		}
		if !strings.Contains(buf.String(), "Created") {
			t.Errorf("output = %q, want a Created confirmation", buf.String())
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "provfile.cue")
		if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
			t.Fatal(err)
		}

		cmd, _ := newInitCmd()
		err := runInit(cmd, []string{path})
		if err == nil {
			t.Fatal("runInit() error = nil, want already-exists error")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("error = %q, want mention of already exists", err)
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "provfile.cue")
		if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
			t.Fatal(err)
		}

		origForce := initForce
		t.Cleanup(func() { initForce = origForce })
		initForce = true

		cmd, _ := newInitCmd()
		if err := runInit(cmd, []string{path}); err != nil {
			t.Fatalf("runInit() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != exampleProvfile {
			t.Error("file was not overwritten with the template")
		}
	})
}
