package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// UpdateCommandAck records the device's acknowledgment of a previously
// dispatched command. The command row is expected to exist already; updating
// zero rows is not an error.
func (s *Storage) UpdateCommandAck(ctx context.Context, ack types.CommandAck) error {
	args := pgx.NamedArgs{
		"device_id":   ack.DeviceID,
		"command_id":  ack.CommandID,
		"status":      ack.Status,
		"message":     nullable(ack.Message),
		"executed_at": ack.ExecutedAt,
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE commands
		SET status = @status, message = @message, executed_at = @executed_at, updated_at = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND command_id = @command_id
	`, args)
	if err != nil {
		return err
	}

	return nil
}
