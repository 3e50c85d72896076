package punch

import (
	"context"
)

// PunchRepository defines data access methods for punch records.
type PunchRepository interface {
	// Create stores a single punch record
	Create(ctx context.Context, p Punch) (Punch, error)

	// BulkCreate stores a batch of punches in one transaction.
	// Used by the device ingestion endpoints.
	BulkCreate(ctx context.Context, punches []Punch) error

	// List retrieves punches matching the filter, newest first
	List(ctx context.Context, filter ListFilter) ([]Punch, error)

	// ListRange retrieves punches within [from, to), oldest first.
	// This is the reconciliation engine's input query.
	ListRange(ctx context.Context, filter RangeFilter) ([]Punch, error)
}
