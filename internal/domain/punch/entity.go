package punch

import (
	"time"
)

// Origin of a punch record. Device punches come from the clock hardware,
// manual punches are entered by an administrator with a justification.
const (
	OriginDevice = "device"
	OriginManual = "manual"
)

type Punch struct {
	ID            int64
	EmployeeID    string
	PunchedAt     time.Time
	Origin        string
	Justification *string
	CreatedAt     time.Time

	// DTO
	EmployeeName *string
}
