package punch

import (
	"time"

	"github.com/c-senju/ponto-fazenda/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type CreateManualPunchRequest struct {
	EmployeeID    string `json:"employee_id"`
	PunchedAt     string `json:"punched_at"` // "2006-01-02 15:04:05", device-local time
	Justification string `json:"justification"`

	parsedAt time.Time
}

func (r *CreateManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	t, ok := validator.IsValidClockTime(r.PunchedAt)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "punched_at",
			Message: "punched_at must be formatted as YYYY-MM-DD HH:MM:SS",
		})
	}
	r.parsedAt = t

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required for manual punches",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchedAtTime returns the parsed timestamp. Only valid after Validate.
func (r *CreateManualPunchRequest) PunchedAtTime() time.Time {
	return r.parsedAt
}

type ListFilter struct {
	EmployeeID *string
	StartDate  *string // "2006-01-02"
	EndDate    *string
	Limit      int
}

func (f *ListFilter) Validate() error {
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

type RangeFilter struct {
	From time.Time
	To   time.Time
}

type PunchResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	PunchedAt     string  `json:"punched_at"`
	Origin        string  `json:"origin"`
	Justification *string `json:"justification,omitempty"`
}
