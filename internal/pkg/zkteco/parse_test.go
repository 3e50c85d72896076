package zkteco

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCData(t *testing.T) {
	t.Parallel()
	raw := "2025-08-05 07:01:33\t12\t1\t0\r\n2025-08-05 07:02:10\t7\t1\t0\r\n"

	records := ParseCData(raw)
	require.Len(t, records, 2)

	assert.Equal(t, "12", records[0].EmployeeID)
	assert.Equal(t, time.Date(2025, 8, 5, 7, 1, 33, 0, time.UTC), records[0].PunchedAt)
	assert.Equal(t, "7", records[1].EmployeeID)
}

func TestParseCData_SkipsBadLines(t *testing.T) {
	t.Parallel()
	raw := "garbage line\r\n" +
		"not-a-date\t12\r\n" +
		"2025-08-05 07:01:33\t\r\n" +
		"2025-08-05 07:05:00\t33\r\n" +
		"\r\n"

	records := ParseCData(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "33", records[0].EmployeeID)
}

func TestParseCData_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ParseCData(""))
	assert.Empty(t, ParseCData("\r\n\r\n"))
}
