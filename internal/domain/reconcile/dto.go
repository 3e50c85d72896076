package reconcile

import (
	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/pkg/validator"
)

// ========================================
// RECONCILIATION DTOs
// ========================================

type ReportFilter struct {
	StartDate *string // "2006-01-02", inclusive
	EndDate   *string // "2006-01-02", inclusive
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be formatted as YYYY-MM-DD",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be formatted as YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReportResponse is the reconciled view of one punch period: who forgot
// to clock, how everyone's time classifies, and the raw punches behind
// both.
type ReportResponse struct {
	MissingPunches []MissingPunch          `json:"missing_punches"`
	Hours          map[string]HoursSummary `json:"hours"`
	Punches        []punch.PunchResponse   `json:"punches"`
	LastDeviceSeen *string                 `json:"last_device_seen,omitempty"`
}
