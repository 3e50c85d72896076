package device

import (
	"context"
	"time"
)

// DeviceRepository defines data access methods for clock terminals and
// their raw event archive.
type DeviceRepository interface {
	// UpsertHeartbeat records that the device with the given serial
	// number was heard from at the given time
	UpsertHeartbeat(ctx context.Context, sn string, at time.Time) error

	// LastCommunication returns the most recent heartbeat across all
	// devices, or nil when no device has ever reported
	LastCommunication(ctx context.Context) (*time.Time, error)

	// ListDevices returns all known devices, most recently seen first
	ListDevices(ctx context.Context) ([]Device, error)

	// BulkCreateEvents archives a batch of raw access events
	BulkCreateEvents(ctx context.Context, events []AccessEvent) error
}
