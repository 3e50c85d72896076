package device

import (
	"context"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/pkg/evo"
)

// Service ingests clock traffic and reports terminal link health.
type Service interface {
	// IngestClockData parses a ZKTeco /iclock/cdata body and stores the
	// punches it carries; returns the number stored
	IngestClockData(ctx context.Context, raw string) (int, error)

	// IngestEvoRecords archives a batch of EVO access events, mirrors
	// them into punches, and refreshes the device heartbeat; returns the
	// number of events archived
	IngestEvoRecords(ctx context.Context, sn string, records []evo.Record) (int, error)

	// Heartbeat records device contact without event data
	Heartbeat(ctx context.Context, sn string, at time.Time) error

	// Status reports per-device link health
	Status(ctx context.Context) (StatusResponse, error)
}
