package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" || alert.DeviceID == "" {
		return ErrNoID
	}

	var location, metadata *string
	if alert.Location != nil {
		b, _ := json.Marshal(alert.Location)
		str := string(b)
		location = &str
	}
	if alert.Metadata != nil {
		b, _ := json.Marshal(alert.Metadata)
		str := string(b)
		metadata = &str
	}

	args := pgx.NamedArgs{
		"alert_id":        alert.ID,
		"device_id":       alert.DeviceID,
		"serial_number":   alert.SerialNumber,
		"fleet":           alert.Fleet,
		"alert_type":      alert.Type,
		"message":         alert.Message,
		"value":           alert.Value,
		"threshold":       alert.Threshold,
		"created_at":      alert.CreatedAt,
		"event_timestamp": alert.EventTimestamp,
		"acknowledged":    alert.Acknowledged,
		"ttl":             alert.TTL,
		"location":        location,
		"metadata":        metadata,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, device_id, serial_number, fleet, alert_type, message, value, threshold,
			created_at, event_timestamp, acknowledged, ttl, location, metadata)
		VALUES (@alert_id, @device_id, @serial_number, @fleet, @alert_type, @message, @value, @threshold,
			@created_at, @event_timestamp, @acknowledged, @ttl, @location, @metadata)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) AcknowledgeAlert(ctx context.Context, alertID string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET acknowledged = 'true'
		WHERE alert_id = @alert_id
	`, pgx.NamedArgs{
		"alert_id": alertID,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "created_at"
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT alert_id, device_id, serial_number, fleet, alert_type, message, value, threshold,
			created_at, event_timestamp, acknowledged, ttl, location, metadata,
			count(*) OVER () AS count
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		OFFSET @offset LIMIT @limit
	`, condition.Where(), condition.SortBy(), condition.SortOrder())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	var alert types.Alert
	var serialNumber, fleet *string
	var location, metadata []byte
	var count int64

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&alert.ID, &alert.DeviceID, &serialNumber, &fleet, &alert.Type, &alert.Message,
		&alert.Value, &alert.Threshold, &alert.CreatedAt, &alert.EventTimestamp,
		&alert.Acknowledged, &alert.TTL, &location, &metadata, &count,
	}, func() error {
		a := alert
		a.SerialNumber = deref(serialNumber)
		a.Fleet = deref(fleet)

		var errs []error
		if location != nil {
			a.Location = &types.Location{}
			errs = append(errs, json.Unmarshal(location, a.Location))
		}
		if metadata != nil {
			errs = append(errs, json.Unmarshal(metadata, &a.Metadata))
		}

		alerts = append(alerts, a)

		return errors.Join(errs...)
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
