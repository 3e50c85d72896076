package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	t.Parallel()
	_, ok := IsValidDate("2025-08-05")
	assert.True(t, ok)

	for _, bad := range []string{"05/08/2025", "2025-13-01", "2025-08-05 07:00:00", ""} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, "IsValidDate(%q)", bad)
	}
}

func TestIsValidClockTime(t *testing.T) {
	t.Parallel()
	parsed, ok := IsValidClockTime("2025-08-05 07:01:33")
	assert.True(t, ok)
	assert.Equal(t, 7, parsed.Hour())

	_, ok = IsValidClockTime("2025-08-05T07:01:33Z")
	assert.False(t, ok)
}

func TestIsValidYear(t *testing.T) {
	t.Parallel()
	year, ok := IsValidYear("2025")
	assert.True(t, ok)
	assert.Equal(t, 2025, year)

	for _, bad := range []string{"25", "20255", "abcd", "-999"} {
		_, ok := IsValidYear(bad)
		assert.False(t, ok, "IsValidYear(%q)", bad)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date must be formatted as YYYY-MM-DD"},
		{Field: "end_date", Message: "end_date is required"},
	}

	assert.Contains(t, errs.Error(), "start_date")
	assert.Equal(t, map[string]string{
		"start_date": "start_date must be formatted as YYYY-MM-DD",
		"end_date":   "end_date is required",
	}, errs.ToMap())
}
