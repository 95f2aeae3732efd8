package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display: whole
// microseconds below a millisecond, whole milliseconds below a second,
// and the default representation otherwise. Short evaluations read
// better without sub-microsecond noise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
