package punch

import (
	"context"
)

// Service manages stored punch records.
type Service interface {
	// CreateManual stores an administrator-entered punch with its
	// justification
	CreateManual(ctx context.Context, req CreateManualPunchRequest) (PunchResponse, error)

	// List retrieves punches newest first with display names applied
	List(ctx context.Context, filter ListFilter) ([]PunchResponse, error)
}
