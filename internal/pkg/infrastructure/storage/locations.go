package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func (s *Storage) AddLocation(ctx context.Context, rec types.LocationRecord) error {
	if rec.DeviceID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"device_id":     rec.DeviceID,
		"serial_number": rec.SerialNumber,
		"fleet":         rec.Fleet,
		"ts":            rec.Timestamp,
		"ttl":           rec.TTL,
		"latitude":      rec.Latitude,
		"longitude":     rec.Longitude,
		"source":        rec.Source,
		"name":          nullable(rec.Name),
		"journey_id":    rec.JourneyID,
		"journey_count": rec.JourneyCount,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO locations (device_id, serial_number, fleet, ts, ttl, latitude, longitude, source, name, journey_id, journey_count)
		VALUES (@device_id, @serial_number, @fleet, @ts, @ttl, @latitude, @longitude, @source, @name, @journey_id, @journey_count)
		ON CONFLICT (device_id, ts) DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryLocations(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.LocationRecord], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortOrder == "" {
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT device_id, serial_number, fleet, ts, ttl, latitude, longitude, source, name, journey_id, journey_count,
			count(*) OVER () AS count
		FROM locations
		WHERE %s
		ORDER BY %s %s
		OFFSET @offset LIMIT @limit
	`, condition.Where(), condition.SortBy(), condition.SortOrder())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.LocationRecord]{}, err
	}

	var rec types.LocationRecord
	var serialNumber, fleet, name *string
	var count int64

	records := make([]types.LocationRecord, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&rec.DeviceID, &serialNumber, &fleet, &rec.Timestamp, &rec.TTL,
		&rec.Latitude, &rec.Longitude, &rec.Source, &name, &rec.JourneyID, &rec.JourneyCount,
		&count,
	}, func() error {
		r := rec
		r.SerialNumber = deref(serialNumber)
		r.Fleet = deref(fleet)
		r.Name = deref(name)
		records = append(records, r)
		return nil
	})
	if err != nil {
		return types.Collection[types.LocationRecord]{}, err
	}

	return types.Collection[types.LocationRecord]{
		Data:       records,
		Count:      uint64(len(records)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
