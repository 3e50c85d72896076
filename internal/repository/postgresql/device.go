package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
	"github.com/c-senju/ponto-fazenda/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deviceRepository struct {
	db *database.DB
}

// UpsertHeartbeat implements device.DeviceRepository.
func (r *deviceRepository) UpsertHeartbeat(ctx context.Context, sn string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO devices (sn, last_communication)
		VALUES ($1, $2)
		ON CONFLICT (sn) DO UPDATE
		SET last_communication = EXCLUDED.last_communication
	`

	if _, err := q.Exec(ctx, query, sn, at); err != nil {
		return fmt.Errorf("failed to upsert device heartbeat: %w", err)
	}

	return nil
}

// LastCommunication implements device.DeviceRepository.
func (r *deviceRepository) LastCommunication(ctx context.Context) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	var last *time.Time
	err := q.QueryRow(ctx, `SELECT MAX(last_communication) FROM devices`).Scan(&last)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last device communication: %w", err)
	}

	return last, nil
}

// ListDevices implements device.DeviceRepository.
func (r *deviceRepository) ListDevices(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT sn, last_communication
		FROM devices
		ORDER BY last_communication DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var d device.Device
		if err := rows.Scan(&d.SN, &d.LastCommunication); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read devices: %w", err)
	}

	return devices, nil
}

// BulkCreateEvents implements device.DeviceRepository.
func (r *deviceRepository) BulkCreateEvents(ctx context.Context, events []device.AccessEvent) error {
	if len(events) == 0 {
		return nil
	}

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO access_logs (
				device_sn, enroll_id, user_name, event_time,
				mode, inout_mode, event_code, image_base64
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		for _, e := range events {
			_, err := tx.Exec(ctx, query,
				e.DeviceSN, e.EnrollID, e.UserName, e.EventTime,
				e.Mode, e.InOutMode, e.EventCode, e.ImageBase64,
			)
			if err != nil {
				return fmt.Errorf("failed to insert access event: %w", err)
			}
		}
		return nil
	})
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}
