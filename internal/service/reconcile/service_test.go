package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/domain/reconcile"
	"github.com/c-senju/ponto-fazenda/internal/pkg/validator"
)

type fakePunchRepo struct {
	punch.PunchRepository
	punches   []punch.Punch
	lastRange punch.RangeFilter
}

func (f *fakePunchRepo) ListRange(ctx context.Context, filter punch.RangeFilter) ([]punch.Punch, error) {
	f.lastRange = filter
	return f.punches, nil
}

type fakeDeviceRepo struct {
	device.DeviceRepository
	lastSeen *time.Time
}

func (f *fakeDeviceRepo) LastCommunication(ctx context.Context) (*time.Time, error) {
	return f.lastSeen, nil
}

type fakeHolidayService struct {
	sets map[int]holiday.Set
}

func (f *fakeHolidayService) Resolve(ctx context.Context, year int) holiday.Set {
	return f.sets[year]
}

func strPtr(s string) *string { return &s }

func TestReconcileService_Report(t *testing.T) {
	t.Parallel()
	tuesday := time.Date(2025, 8, 5, 0, 0, 0, 0, time.Local)
	seen := time.Date(2025, 8, 5, 17, 2, 11, 0, time.Local)

	punchRepo := &fakePunchRepo{punches: []punch.Punch{
		{ID: 1, EmployeeID: "1", PunchedAt: at(tuesday, 7, 0), Origin: punch.OriginDevice},
		{ID: 2, EmployeeID: "1", PunchedAt: at(tuesday, 11, 0), Origin: punch.OriginDevice},
	}}
	svc := NewReconcileService(
		punchRepo,
		&fakeDeviceRepo{lastSeen: &seen},
		testDirectory,
		&fakeHolidayService{},
	)

	report, err := svc.Report(context.Background(), reconcile.ReportFilter{
		StartDate: strPtr("2025-08-01"),
		EndDate:   strPtr("2025-08-05"),
	})
	require.NoError(t, err)

	// End date is inclusive, so the repository bound is the next midnight.
	assert.Equal(t, time.Date(2025, 8, 6, 0, 0, 0, 0, time.UTC), punchRepo.lastRange.To)

	// 07:00 and 11:00 satisfied, 13:00 and 17:00 missing.
	require.Len(t, report.MissingPunches, 2)
	assert.Equal(t, "13:00", report.MissingPunches[0].ExpectedTime)
	assert.Equal(t, "17:00", report.MissingPunches[1].ExpectedTime)

	assert.Equal(t, reconcile.HoursSummary{
		Normal:   "4h 0m",
		Extra50:  "0h 0m",
		Extra100: "0h 0m",
	}, report.Hours["Maria"])
	assert.Contains(t, report.Hours, "João")

	require.Len(t, report.Punches, 2)
	assert.Equal(t, "2025-08-05 11:00:00", report.Punches[0].PunchedAt)
	assert.Equal(t, "Maria", report.Punches[0].EmployeeName)

	require.NotNil(t, report.LastDeviceSeen)
	assert.Equal(t, "2025-08-05 17:02:11", *report.LastDeviceSeen)
}

func TestReconcileService_Report_HolidayYearsResolved(t *testing.T) {
	t.Parallel()
	thursday := time.Date(2025, 12, 25, 0, 0, 0, 0, time.Local)

	punchRepo := &fakePunchRepo{punches: []punch.Punch{
		{ID: 1, EmployeeID: "1", PunchedAt: at(thursday, 8, 0), Origin: punch.OriginDevice},
		{ID: 2, EmployeeID: "1", PunchedAt: at(thursday, 12, 0), Origin: punch.OriginDevice},
	}}
	svc := NewReconcileService(punchRepo, nil, testDirectory, &fakeHolidayService{
		sets: map[int]holiday.Set{2025: {"2025-12-25": "Natal"}},
	})

	report, err := svc.Report(context.Background(), reconcile.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, "4h 0m", report.Hours["Maria"].Extra100)
	assert.Equal(t, "0h 0m", report.Hours["Maria"].Normal)
	assert.Nil(t, report.LastDeviceSeen)
}

func TestReconcileService_Report_InvalidFilter(t *testing.T) {
	t.Parallel()
	svc := NewReconcileService(&fakePunchRepo{}, nil, testDirectory, &fakeHolidayService{})

	_, err := svc.Report(context.Background(), reconcile.ReportFilter{
		StartDate: strPtr("05/08/2025"),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "start_date", errs[0].Field)
}
