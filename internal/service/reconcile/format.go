package reconcile

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "Xh Ym", flooring sub-minute
// precision. Negative durations keep floor semantics, so -30m renders
// as "-1h 30m"; unclamped negative totals stay visibly wrong instead of
// being masked.
func FormatDuration(d time.Duration) string {
	totalSeconds := int64(d / time.Second)
	hours := floorDiv(totalSeconds, 3600)
	minutes := floorDiv(floorMod(totalSeconds, 3600), 60)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
