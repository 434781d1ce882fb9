// SPDX-License-Identifier: MPL-2.0

package sequencer

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"provis-cli/pkg/provfile"
)

// EvaluatePrecondition reports whether a step's precondition is satisfied.
// Paths are expanded (~/...) and resolved against baseDir when relative.
// A nil precondition is never satisfied: the step always runs.
//
// This is a coarse idempotence proxy: a directory left behind by a
// partially completed install satisfies dir_exists just the same.
func EvaluatePrecondition(pc *provfile.Precondition, baseDir string) bool {
	if pc == nil {
		return false
	}

	switch {
	case pc.DirExists != "":
		info, err := os.Stat(resolvePath(pc.DirExists, baseDir))
		return err == nil && info.IsDir()
	case pc.FileExists != "":
		info, err := os.Stat(resolvePath(pc.FileExists, baseDir))
		return err == nil && !info.IsDir()
	case pc.CommandExists != "":
		_, err := exec.LookPath(pc.CommandExists)
		return err == nil
	default:
		return false
	}
}

// resolvePath expands a leading ~ to the user's home directory and resolves
// relative paths against baseDir.
func resolvePath(path, baseDir string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
		return path
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		return filepath.Join(baseDir, path)
	}
	return path
}
