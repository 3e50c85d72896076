package device

import (
	"time"
)

// Device is a clock terminal known by its serial number. The row is
// upserted on every contact so the dashboard can show link health.
type Device struct {
	SN                string
	LastCommunication time.Time
}

// AccessEvent is one raw event from an EVO terminal, archived verbatim.
// Punches are derived from events separately; the archive keeps the
// original payload fields for audits.
type AccessEvent struct {
	ID          int64
	DeviceSN    string
	EnrollID    int
	UserName    *string
	EventTime   time.Time
	Mode        *int
	InOutMode   *int
	EventCode   *int
	ImageBase64 *string
	CreatedAt   time.Time
}
