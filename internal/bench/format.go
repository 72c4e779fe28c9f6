package bench

import (
	"fmt"
	"strings"
	"time"
)

// FormatNumber formats an integer with comma separators.
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteRune(c)
	}
	return result.String()
}

// FormatLatency rounds d to a precision matching its magnitude and renders
// it with time.Duration's unit suffixes, e.g. 1.5µs or 7.25ms.
func FormatLatency(d time.Duration) string {
	return d.Round(latencyPrecision(d)).String()
}

func latencyPrecision(d time.Duration) time.Duration {
	switch abs := max(d, -d); {
	case abs < time.Microsecond:
		return time.Nanosecond
	case abs < time.Millisecond:
		return 100 * time.Nanosecond
	case abs < time.Second:
		return 10 * time.Microsecond
	default:
		return 10 * time.Millisecond
	}
}
