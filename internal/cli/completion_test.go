package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletionShells(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"_apcalc_completions", "complete -F", "--base", "--completion", "compgen -f"}},
		{"zsh", []string{"#compdef apcalc", "_arguments", "--no-color", "_files"}},
		{"fish", []string{"complete -c apcalc", "-l base", "-l completion", "-rF"}},
		{"powershell", []string{"Register-ArgumentCompleter", "'--base'", "CompletionResult"}},
		{"ps", []string{"Register-ArgumentCompleter"}},
	}

	for _, tc := range tests {
		t.Run(tc.shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tc.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q): %v", tc.shell, err)
			}
			out := buf.String()
			for _, sub := range tc.contains {
				if !strings.Contains(out, sub) {
					t.Errorf("%s script should contain %q", tc.shell, sub)
				}
			}
		})
	}
}

func TestGenerateCompletionUnsupportedShell(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh")
	if err == nil {
		t.Fatal("tcsh should be rejected")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("error = %v, should name the unsupported shell", err)
	}
}

// Every registry flag must surface in every generated script, so a new
// flag cannot silently miss a shell.
func TestCompletionCoversRegistry(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, shell); err != nil {
			t.Fatalf("GenerateCompletion(%q): %v", shell, err)
		}
		out := buf.String()
		for _, f := range flagRegistry {
			if f.Long != "" && !strings.Contains(out, f.Long) {
				t.Errorf("%s script is missing flag --%s", shell, f.Long)
			}
		}
	}
}
