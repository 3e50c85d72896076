// Package zkteco parses the push-protocol bodies ZKTeco clocks POST to
// /iclock/cdata: one record per line, CRLF separated, tab-delimited
// columns, first column the device-local timestamp and second the
// enrollment id.
package zkteco

import (
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Record is one parsed clock event.
type Record struct {
	EmployeeID string
	PunchedAt  time.Time
}

// ParseCData extracts clock records from a raw request body. Lines that
// are empty, too short, or carry an unparseable timestamp are skipped:
// the device re-sends the whole batch on a non-OK reply, so a single bad
// line must never fail the batch.
func ParseCData(raw string) []Record {
	var records []Record

	for _, line := range strings.Split(strings.TrimSpace(raw), "\r\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}

		punchedAt, err := time.Parse(timeLayout, parts[0])
		if err != nil {
			continue
		}

		employeeID := strings.TrimSpace(parts[1])
		if employeeID == "" {
			continue
		}

		records = append(records, Record{
			EmployeeID: employeeID,
			PunchedAt:  punchedAt,
		})
	}

	return records
}
