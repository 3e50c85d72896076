package reconcile

import (
	"context"
)

// Service produces reconciliation reports over the stored punches.
type Service interface {
	// Report loads punches for the filter range and runs missing-punch
	// detection and hours classification over them
	Report(ctx context.Context, filter ReportFilter) (ReportResponse, error)
}
