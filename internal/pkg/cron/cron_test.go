package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
)

type fakeHolidayService struct {
	resolved []int
}

func (f *fakeHolidayService) Resolve(ctx context.Context, year int) holiday.Set {
	f.resolved = append(f.resolved, year)
	return holiday.Set{}
}

type fakeDeviceRepo struct {
	device.DeviceRepository
	devices []device.Device
	err     error
	calls   int
}

func (f *fakeDeviceRepo) ListDevices(ctx context.Context) ([]device.Device, error) {
	f.calls++
	return f.devices, f.err
}

func TestWarmYears(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{2025},
		warmYears(time.Date(2025, 8, 30, 10, 0, 0, 0, time.Local)))

	// Through January the outgoing year is still reported on.
	assert.Equal(t, []int{2026, 2025},
		warmYears(time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local)))

	assert.Equal(t, []int{2026},
		warmYears(time.Date(2026, 2, 1, 10, 0, 0, 0, time.Local)))
}

func TestHolidayJobs_PrewarmHolidayCache(t *testing.T) {
	t.Parallel()
	svc := &fakeHolidayService{}
	jobs := NewHolidayJobs(svc)

	require.NoError(t, jobs.PrewarmHolidayCache(context.Background()))
	assert.Equal(t, warmYears(time.Now()), svc.resolved)
}

func TestDeviceJobs_SilentDevices(t *testing.T) {
	t.Parallel()
	now := time.Now()
	jobs := NewDeviceJobs(&fakeDeviceRepo{}, 10*time.Minute)

	silent := jobs.silentDevices([]device.Device{
		{SN: "EVO123456", LastCommunication: now.Add(-time.Minute)},
		{SN: "ZK987", LastCommunication: now.Add(-11 * time.Minute)},
		{SN: "ZK654", LastCommunication: now.Add(-10 * time.Minute)},
	}, now)

	// Exactly at the threshold still counts as alive.
	require.Len(t, silent, 1)
	assert.Equal(t, "ZK987", silent[0].SN)
}

func TestDeviceJobs_WatchSilentDevices_RepoError(t *testing.T) {
	t.Parallel()
	repo := &fakeDeviceRepo{err: errors.New("connection lost")}
	jobs := NewDeviceJobs(repo, 10*time.Minute)

	require.Error(t, jobs.WatchSilentDevices(context.Background()))
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()
	svc := &fakeHolidayService{}
	repo := &fakeDeviceRepo{}

	scheduler := NewScheduler()
	NewHolidayJobs(svc).RegisterJobs(scheduler)
	NewDeviceJobs(repo, 10*time.Minute).RegisterJobs(scheduler)

	scheduler.RunOnce(context.Background())

	assert.NotEmpty(t, svc.resolved)
	assert.Equal(t, 1, repo.calls)

	// A failing job must not stop the remaining jobs.
	repo.err = errors.New("connection lost")
	scheduler.RunOnce(context.Background())
	assert.Equal(t, 2, repo.calls)
	assert.Len(t, svc.resolved, len(warmYears(time.Now()))*2)
}
