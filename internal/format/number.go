// Package format provides pure string-formatting helpers shared by the
// presentation layers.
package format

import "strings"

// FormatNumberString inserts thousands separators into a decimal number
// string, e.g. "1234567" becomes "1,234,567". A leading '-' is
// preserved; strings containing non-digit characters (other bases,
// fractions) are returned unchanged.
func FormatNumberString(s string) string {
	digits := s
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return s
		}
	}
	if len(digits) <= 3 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(digits)/3)
	sb.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > len(sign) {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
