// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Widget: {
	name:  string & !=""
	count: int & >=0 | *1
}
`

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	got, err := ParseAndDecode[widget](testSchema, []byte(`name: "gear"`), "#Widget")
	if err != nil {
		t.Fatalf("ParseAndDecode() error = %v", err)
	}
	if got.Name != "gear" {
		t.Errorf("Name = %q, want %q", got.Name, "gear")
	}
	if got.Count != 1 {
		t.Errorf("Count = %d, want default 1", got.Count)
	}
}

func TestParseAndDecodeSchemaViolation(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[widget](testSchema, []byte(`name: "gear"
count: -2`), "#Widget", WithFilename("widget.cue"))
	if err == nil {
		t.Fatal("ParseAndDecode() expected error for negative count")
	}
	if !strings.Contains(err.Error(), "widget.cue") {
		t.Errorf("error %q does not mention the filename", err)
	}
}

func TestParseAndDecodeSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[widget](testSchema, []byte(`name: "unterminated`), "#Widget")
	if err == nil {
		t.Fatal("ParseAndDecode() expected error for invalid CUE syntax")
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "ok.cue"); err != nil {
		t.Errorf("CheckFileSize() at limit = %v, want nil", err)
	}
	if err := CheckFileSize(make([]byte, 101), 100, "big.cue"); err == nil {
		t.Error("CheckFileSize() over limit = nil, want error")
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"steps"}, "steps"},
		{[]string{"steps", "0", "script"}, "steps[0].script"},
		{[]string{"ui", "color_scheme"}, "ui.color_scheme"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
