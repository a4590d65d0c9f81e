package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func (s *Storage) GetAlias(ctx context.Context, serialNumber string) (types.DeviceAlias, error) {
	var alias types.DeviceAlias

	err := s.pool.QueryRow(ctx, `
		SELECT serial_number, device_id, notecard_id, created_at, updated_at
		FROM device_aliases
		WHERE serial_number = @serial_number
	`, pgx.NamedArgs{
		"serial_number": serialNumber,
	}).Scan(&alias.SerialNumber, &alias.DeviceID, &alias.NotecardID, &alias.CreatedAt, &alias.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DeviceAlias{}, ErrNoRows
		}
		return types.DeviceAlias{}, err
	}

	return alias, nil
}

func (s *Storage) SaveAlias(ctx context.Context, alias types.DeviceAlias) error {
	if alias.SerialNumber == "" || alias.DeviceID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO device_aliases (serial_number, device_id, notecard_id)
		VALUES (@serial_number, @device_id, @notecard_id)
		ON CONFLICT (serial_number) DO UPDATE SET
			notecard_id = EXCLUDED.notecard_id,
			updated_at = CURRENT_TIMESTAMP
	`, pgx.NamedArgs{
		"serial_number": alias.SerialNumber,
		"device_id":     alias.DeviceID,
		"notecard_id":   alias.NotecardID,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) AddActivity(ctx context.Context, activity types.Activity) error {
	if activity.ID == "" {
		return ErrNoID
	}

	var data *string
	if activity.Data != nil {
		b, _ := json.Marshal(activity.Data)
		str := string(b)
		data = &str
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO activity (activity_id, device_id, activity_type, data, ts)
		VALUES (@activity_id, @device_id, @activity_type, @data, @ts)
	`, pgx.NamedArgs{
		"activity_id":   activity.ID,
		"device_id":     activity.DeviceID,
		"activity_type": activity.Type,
		"data":          data,
		"ts":            activity.Timestamp,
	})
	if err != nil {
		return err
	}

	return nil
}
