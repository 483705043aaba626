package timefmt

import "fmt"

// HHMM renders a duration in seconds as zero-padded "HH:MM".
// The seconds component is truncated, not rounded.
func HHMM(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
