package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vertti/make-ffx-env/pkg/result"
)

func withoutColors(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldDim, oldReset := green, red, dim, reset
	green, red, dim, reset = "", "", "", ""
	t.Cleanup(func() { green, red, dim, reset = oldGreen, oldRed, oldDim, oldReset })
}

func TestFormatLabel(t *testing.T) {
	withoutColors(t)

	tests := []struct {
		input string
		want  string
	}{
		{"wrote 2 bytes", "wrote 2 bytes"},
		{"syntax: valid", "syntax: valid"},
		{"failed to open x: permission denied", "failed to open x: permission denied"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := formatLabel(tt.input); got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatLabelWithColors(t *testing.T) {
	oldDim, oldReset := dim, reset
	defer func() { dim, reset = oldDim, oldReset }()

	dim, reset = "[DIM]", "[RESET]"

	tests := []struct {
		input string
		want  string
	}{
		{"syntax: valid", "[DIM]syntax:[RESET] valid"},
		{"keys: 0", "[DIM]keys:[RESET] 0"},
		{"wrote 2 bytes", "wrote 2 bytes"},
	}

	for _, tt := range tests {
		if got := formatLabel(tt.input); got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrintResultOK(t *testing.T) {
	withoutColors(t)
	var buf bytes.Buffer

	PrintResult(&buf, result.Result{
		Name:    "ffx-env: env.json",
		Status:  result.StatusOK,
		Details: []string{"wrote 2 bytes"},
	})

	want := "[OK] ffx-env: env.json\n     wrote 2 bytes\n"
	if buf.String() != want {
		t.Errorf("PrintResult output = %q, want %q", buf.String(), want)
	}
}

func TestPrintResultFail(t *testing.T) {
	withoutColors(t)
	var buf bytes.Buffer

	PrintResult(&buf, result.Result{
		Name:    "ffx-env: /nonexistent_dir/env.json",
		Status:  result.StatusFail,
		Details: []string{"no such file or directory"},
	})

	want := "[FAIL] ffx-env: /nonexistent_dir/env.json\n       no such file or directory\n"
	if buf.String() != want {
		t.Errorf("PrintResult output = %q, want %q", buf.String(), want)
	}
}

func TestPrintResultColored(t *testing.T) {
	oldGreen, oldRed, oldDim, oldReset := green, red, dim, reset
	defer func() { green, red, dim, reset = oldGreen, oldRed, oldDim, oldReset }()
	green, red, dim, reset = "<g>", "<r>", "<d>", "</>"

	var buf bytes.Buffer
	PrintResult(&buf, result.Result{Name: "verify: env.json", Status: result.StatusFail, Details: []string{"keys: 3"}})

	if !strings.HasPrefix(buf.String(), "<r>[FAIL]</> verify: env.json\n") {
		t.Errorf("PrintResult output = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "<d>keys:</> 3") {
		t.Errorf("PrintResult output = %q, want dimmed label", buf.String())
	}
}
