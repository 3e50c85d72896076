package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h 0m"},
		{8 * time.Hour, "8h 0m"},
		{4*time.Hour + 30*time.Minute, "4h 30m"},
		{9*time.Hour + 5*time.Minute + 59*time.Second, "9h 5m"},
		{45 * time.Second, "0h 0m"},
		// Floored negatives: -30m is "one hour back, 30 forward".
		{-30 * time.Minute, "-1h 30m"},
		{-90 * time.Minute, "-2h 30m"},
		{-2 * time.Hour, "-2h 0m"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.in), "FormatDuration(%v)", tc.in)
	}
}
