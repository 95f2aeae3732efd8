package format

import (
	"testing"
	"time"
)

func TestFormatNumberString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"-1234567", "-1,234,567"},
		{"12345678901234567890", "12,345,678,901,234,567,890"},
		{"ff", "ff"},      // non-decimal passes through
		{"1.5", "1.5"},    // fractions pass through
		{"-42", "-42"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.in); got != tt.want {
			t.Errorf("FormatNumberString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500us", "500µs"},
		{"250ms", "250ms"},
		{"2s", "2s"},
	}
	for _, tt := range tests {
		d, err := time.ParseDuration(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatExecutionDuration(d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
