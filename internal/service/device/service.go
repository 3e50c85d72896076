package device

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/pkg/evo"
	"github.com/c-senju/ponto-fazenda/internal/pkg/zkteco"
	"github.com/google/uuid"
)

type DeviceServiceImpl struct {
	device.DeviceRepository
	punch.PunchRepository

	// A device silent longer than this is reported offline.
	silenceThreshold time.Duration
}

// IngestClockData implements device.Service.
func (s *DeviceServiceImpl) IngestClockData(ctx context.Context, raw string) (int, error) {
	batchID := uuid.NewString()
	records := zkteco.ParseCData(raw)
	if len(records) == 0 {
		slog.Warn("Clock upload carried no parseable records", "batch_id", batchID, "bytes", len(raw))
		return 0, nil
	}

	punches := make([]punch.Punch, 0, len(records))
	for _, r := range records {
		punches = append(punches, punch.Punch{
			EmployeeID: r.EmployeeID,
			PunchedAt:  r.PunchedAt,
			Origin:     punch.OriginDevice,
		})
	}

	if err := s.PunchRepository.BulkCreate(ctx, punches); err != nil {
		return 0, fmt.Errorf("failed to store clock batch: %w", err)
	}

	slog.Info("Stored clock batch", "batch_id", batchID, "count", len(punches))
	return len(punches), nil
}

// IngestEvoRecords implements device.Service.
func (s *DeviceServiceImpl) IngestEvoRecords(ctx context.Context, sn string, records []evo.Record) (int, error) {
	batchID := uuid.NewString()

	events := make([]device.AccessEvent, 0, len(records))
	punches := make([]punch.Punch, 0, len(records))
	for _, r := range records {
		eventTime, err := r.EventTime()
		if err != nil {
			slog.Warn("Skipping EVO record with bad timestamp",
				"batch_id", batchID, "sn", sn, "time", r.Time, "error", err)
			continue
		}

		events = append(events, device.AccessEvent{
			DeviceSN:    sn,
			EnrollID:    r.EnrollID,
			UserName:    r.Name,
			EventTime:   eventTime,
			Mode:        r.Mode,
			InOutMode:   r.InOut,
			EventCode:   r.Event,
			ImageBase64: r.Image,
		})
		punches = append(punches, punch.Punch{
			EmployeeID: strconv.Itoa(r.EnrollID),
			PunchedAt:  eventTime,
			Origin:     punch.OriginDevice,
		})
	}

	if err := s.DeviceRepository.BulkCreateEvents(ctx, events); err != nil {
		return 0, fmt.Errorf("failed to archive EVO events: %w", err)
	}
	if err := s.PunchRepository.BulkCreate(ctx, punches); err != nil {
		return 0, fmt.Errorf("failed to store EVO punches: %w", err)
	}

	if err := s.Heartbeat(ctx, sn, time.Now()); err != nil {
		// Heartbeat loss must not fail an already stored batch.
		slog.Error("Failed to refresh device heartbeat", "sn", sn, "error", err)
	}

	slog.Info("Stored EVO batch", "batch_id", batchID, "sn", sn, "count", len(events))
	return len(events), nil
}

// Heartbeat implements device.Service.
func (s *DeviceServiceImpl) Heartbeat(ctx context.Context, sn string, at time.Time) error {
	if sn == "" {
		return nil
	}
	if err := s.DeviceRepository.UpsertHeartbeat(ctx, sn, at); err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// Status implements device.Service.
func (s *DeviceServiceImpl) Status(ctx context.Context) (device.StatusResponse, error) {
	devices, err := s.DeviceRepository.ListDevices(ctx)
	if err != nil {
		return device.StatusResponse{}, fmt.Errorf("failed to list devices: %w", err)
	}

	now := time.Now()
	responses := make([]device.DeviceResponse, 0, len(devices))
	var newest *string
	for i, d := range devices {
		formatted := d.LastCommunication.Format("2006-01-02 15:04:05")
		if i == 0 {
			newest = &formatted
		}
		responses = append(responses, device.DeviceResponse{
			SN:                d.SN,
			LastCommunication: formatted,
			Online:            now.Sub(d.LastCommunication) <= s.silenceThreshold,
		})
	}

	return device.StatusResponse{
		LastCommunication: newest,
		Devices:           responses,
	}, nil
}

func NewDeviceService(
	deviceRepo device.DeviceRepository,
	punchRepo punch.PunchRepository,
	silenceThreshold time.Duration,
) device.Service {
	return &DeviceServiceImpl{
		DeviceRepository: deviceRepo,
		PunchRepository:  punchRepo,
		silenceThreshold: silenceThreshold,
	}
}
