package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats d in microseconds below a millisecond, in
// milliseconds below a second, and with time.Duration.String otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
