// SPDX-License-Identifier: MPL-2.0

package provfile

import (
	_ "embed"
	"fmt"
	"os"

	"provis-cli/internal/cueutil"
)

//go:embed provfile_schema.cue
var provfileSchema string

// Parse reads and parses a provfile from the given path.
func Parse(path string) (*Provfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read provfile at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses provfile content from bytes. The path is used for error
// messages and recorded as the plan's FilePath.
func ParseBytes(data []byte, path string) (*Provfile, error) {
	result, err := cueutil.ParseAndDecode[Provfile](
		provfileSchema,
		data,
		"#Provfile",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	pf := result
	pf.FilePath = path

	if err := pf.validate(); err != nil {
		return nil, err
	}

	return pf, nil
}
