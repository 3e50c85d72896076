package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
	"github.com/c-senju/ponto-fazenda/internal/domain/employee"
	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/domain/reconcile"
)

type ReconcileServiceImpl struct {
	punch.PunchRepository
	device.DeviceRepository
	directory      employee.Directory
	holidayService holiday.Service
}

// Report implements reconcile.Service.
func (s *ReconcileServiceImpl) Report(ctx context.Context, filter reconcile.ReportFilter) (reconcile.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return reconcile.ReportResponse{}, err
	}

	var rangeFilter punch.RangeFilter
	if filter.StartDate != nil && *filter.StartDate != "" {
		from, _ := time.Parse("2006-01-02", *filter.StartDate)
		rangeFilter.From = from
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		// Inclusive end date: the range bound is the following midnight.
		to, _ := time.Parse("2006-01-02", *filter.EndDate)
		rangeFilter.To = to.AddDate(0, 0, 1)
	}

	punches, err := s.PunchRepository.ListRange(ctx, rangeFilter)
	if err != nil {
		return reconcile.ReportResponse{}, fmt.Errorf("failed to load punches: %w", err)
	}

	grouped := GroupPunches(punches)
	holidays := s.resolveHolidays(ctx, grouped)

	missing := DetectMissing(grouped, s.directory)
	if missing == nil {
		missing = []reconcile.MissingPunch{}
	}

	hours := make(map[string]reconcile.HoursSummary)
	for name, totals := range ClassifyHours(grouped, s.directory, holidays) {
		hours[name] = reconcile.HoursSummary{
			Normal:   FormatDuration(totals.Normal),
			Extra50:  FormatDuration(totals.Extra50),
			Extra100: FormatDuration(totals.Extra100),
		}
	}

	return reconcile.ReportResponse{
		MissingPunches: missing,
		Hours:          hours,
		Punches:        s.mapPunches(punches),
		LastDeviceSeen: s.lastDeviceSeen(ctx),
	}, nil
}

// resolveHolidays merges the holiday sets of every calendar year the
// grouped punches touch. Resolution never fails; at worst the set is
// empty and holiday work classifies as regular weekday time.
func (s *ReconcileServiceImpl) resolveHolidays(ctx context.Context, grouped []reconcile.EmployeeDays) holiday.Set {
	years := make(map[int]struct{})
	for _, emp := range grouped {
		for _, day := range emp.Days {
			years[day.Date.Year()] = struct{}{}
		}
	}

	merged := holiday.Set{}
	for year := range years {
		merged.MergeMissing(s.holidayService.Resolve(ctx, year))
	}
	return merged
}

// mapPunches renders punches newest first with directory names applied.
func (s *ReconcileServiceImpl) mapPunches(punches []punch.Punch) []punch.PunchResponse {
	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.PunchResponse{
			ID:            p.ID,
			EmployeeID:    p.EmployeeID,
			EmployeeName:  s.directory.NameFor(p.EmployeeID),
			PunchedAt:     p.PunchedAt.Format("2006-01-02 15:04:05"),
			Origin:        p.Origin,
			Justification: p.Justification,
		})
	}
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].PunchedAt > responses[j].PunchedAt
	})
	return responses
}

func (s *ReconcileServiceImpl) lastDeviceSeen(ctx context.Context) *string {
	if s.DeviceRepository == nil {
		return nil
	}
	last, err := s.DeviceRepository.LastCommunication(ctx)
	if err != nil {
		slog.Error("Failed to load device heartbeat for report", "error", err)
		return nil
	}
	if last == nil {
		return nil
	}
	formatted := last.Format("2006-01-02 15:04:05")
	return &formatted
}

func NewReconcileService(
	punchRepo punch.PunchRepository,
	deviceRepo device.DeviceRepository,
	directory employee.Directory,
	holidayService holiday.Service,
) reconcile.Service {
	return &ReconcileServiceImpl{
		PunchRepository:  punchRepo,
		DeviceRepository: deviceRepo,
		directory:        directory,
		holidayService:   holidayService,
	}
}
