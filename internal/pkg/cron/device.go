package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
)

type DeviceJobs struct {
	deviceRepo       device.DeviceRepository
	silenceThreshold time.Duration
}

func NewDeviceJobs(deviceRepo device.DeviceRepository, silenceThreshold time.Duration) *DeviceJobs {
	return &DeviceJobs{
		deviceRepo:       deviceRepo,
		silenceThreshold: silenceThreshold,
	}
}

func (j *DeviceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("watch_silent_devices", 5*time.Minute, j.WatchSilentDevices)
}

// WatchSilentDevices logs every terminal whose last contact is older
// than the silence threshold. A silent clock means punches are piling
// up on the device, so the gap should be visible before payday.
func (j *DeviceJobs) WatchSilentDevices(ctx context.Context) error {
	devices, err := j.deviceRepo.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	now := time.Now()
	for _, d := range j.silentDevices(devices, now) {
		slog.Warn("Cron: Device silent beyond threshold",
			"sn", d.SN,
			"last_communication", d.LastCommunication.Format("2006-01-02 15:04:05"),
			"silence", now.Sub(d.LastCommunication).Truncate(time.Second))
	}

	return nil
}

// silentDevices filters to terminals whose last contact is older than
// the threshold.
func (j *DeviceJobs) silentDevices(devices []device.Device, now time.Time) []device.Device {
	var silent []device.Device
	for _, d := range devices {
		if now.Sub(d.LastCommunication) > j.silenceThreshold {
			silent = append(silent, d)
		}
	}
	return silent
}
