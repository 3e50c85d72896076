package reconcile

import (
	"time"
)

// DayPunches is one employee's punches for one calendar day, sorted
// ascending.
type DayPunches struct {
	Date    time.Time // midnight, punch-local
	Punches []time.Time
}

// EmployeeDays is every worked day of one employee, dates ascending.
type EmployeeDays struct {
	EmployeeID string
	Days       []DayPunches
}

// MissingPunch is one expected clock event with no actual punch within
// tolerance. Produced for display, never persisted.
type MissingPunch struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`          // DD/MM/YYYY
	ExpectedTime string `json:"expected_time"` // HH:MM
}

// DayHours accumulates one employee's classified work time across every
// day in the input range. Durations are not clamped; malformed punch
// pairs can drive them negative.
type DayHours struct {
	Normal   time.Duration
	Extra50  time.Duration
	Extra100 time.Duration
}

// HoursSummary is DayHours rendered for display.
type HoursSummary struct {
	Normal   string `json:"normal"`
	Extra50  string `json:"extra50"`
	Extra100 string `json:"extra100"`
}
