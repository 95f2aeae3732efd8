package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apmath/bignum"
	"github.com/apmath/bignum/internal/ui"
)

func TestFormatResult(t *testing.T) {
	ui.InitTheme(true)

	long := bignum.NewInt64(10).Pow(200) // 201 decimal digits

	tests := []struct {
		name     string
		x        *bignum.Int
		cfg      OutputConfig
		want     string
		contains []string
	}{
		{
			name: "short value untouched",
			x:    bignum.NewInt64(12345),
			cfg:  OutputConfig{Base: 10},
			want: "12345",
		},
		{
			name: "hex output",
			x:    bignum.NewInt64(255),
			cfg:  OutputConfig{Base: 16},
			want: "ff",
		},
		{
			name:     "long value truncated",
			x:        long,
			cfg:      OutputConfig{Base: 10},
			contains: []string{"...", "(201 digits)"},
		},
		{
			name: "verbose keeps full value",
			x:    long,
			cfg:  OutputConfig{Base: 10, Verbose: true},
			want: long.String(),
		},
		{
			name: "quiet keeps full value",
			x:    long,
			cfg:  OutputConfig{Base: 10, Quiet: true},
			want: long.String(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatResult(tc.x, tc.cfg)
			if err != nil {
				t.Fatalf("FormatResult: %v", err)
			}
			if tc.want != "" && got != tc.want {
				t.Errorf("FormatResult = %q, want %q", got, tc.want)
			}
			for _, sub := range tc.contains {
				if !strings.Contains(got, sub) {
					t.Errorf("FormatResult = %q, should contain %q", got, sub)
				}
			}
		})
	}
}

func TestFormatResultTruncationEdges(t *testing.T) {
	ui.InitTheme(true)

	long := bignum.NewInt64(10).Pow(200)
	s := long.String()

	got, err := FormatResult(long, OutputConfig{Base: 10})
	if err != nil {
		t.Fatalf("FormatResult: %v", err)
	}
	if !strings.HasPrefix(got, s[:DisplayEdges]) {
		t.Errorf("truncated result should start with the first %d digits", DisplayEdges)
	}
	if !strings.Contains(got, s[len(s)-DisplayEdges:]) {
		t.Errorf("truncated result should contain the last %d digits", DisplayEdges)
	}
}

func TestFormatResultInvalidBase(t *testing.T) {
	if _, err := FormatResult(bignum.NewInt64(1), OutputConfig{Base: 99}); err == nil {
		t.Error("base 99 should fail")
	}
}

func TestDisplayResult(t *testing.T) {
	ui.InitTheme(true)

	x := bignum.NewInt64(1 << 20)

	t.Run("standard output", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResult(&buf, x, 5*time.Millisecond, OutputConfig{Base: 10})
		if err != nil {
			t.Fatalf("DisplayResult: %v", err)
		}
		out := buf.String()
		for _, sub := range []string{"= 1048576", "bits:", "21", "time:", "5ms"} {
			if !strings.Contains(out, sub) {
				t.Errorf("output %q should contain %q", out, sub)
			}
		}
	})

	t.Run("quiet output is the bare value", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResult(&buf, x, 5*time.Millisecond, OutputConfig{Base: 10, Quiet: true})
		if err != nil {
			t.Fatalf("DisplayResult: %v", err)
		}
		if got := buf.String(); got != "1048576\n" {
			t.Errorf("quiet output = %q, want %q", got, "1048576\n")
		}
	})
}

func TestWriteResultToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "result.txt")

	x := bignum.NewInt64(3628800)
	cfg := OutputConfig{Base: 10, OutputFile: path}

	if err := WriteResultToFile(x, "10 fact", 7*time.Millisecond, cfg); err != nil {
		t.Fatalf("WriteResultToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	for _, sub := range []string{"# Expression: 10 fact", "# Base: 10", "# Bits: 22", "3628800"} {
		if !strings.Contains(content, sub) {
			t.Errorf("file content should contain %q:\n%s", sub, content)
		}
	}
}

func TestWriteResultToFileNoPath(t *testing.T) {
	// An empty OutputFile is a no-op, not an error.
	if err := WriteResultToFile(bignum.NewInt64(1), "1", 0, OutputConfig{Base: 10}); err != nil {
		t.Errorf("WriteResultToFile with no path: %v", err)
	}
}
