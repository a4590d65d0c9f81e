package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func (s *Storage) AddTelemetry(ctx context.Context, rec types.TelemetryRecord) error {
	if rec.DeviceID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"device_id":       rec.DeviceID,
		"serial_number":   rec.SerialNumber,
		"fleet":           rec.Fleet,
		"data_type":       rec.DataType,
		"ts":              rec.Timestamp,
		"ttl":             rec.TTL,
		"temperature":     rec.Temperature,
		"humidity":        rec.Humidity,
		"pressure":        rec.Pressure,
		"motion":          rec.Motion,
		"voltage":         rec.Voltage,
		"latitude":        rec.Latitude,
		"longitude":       rec.Longitude,
		"location_source": nullable(rec.LocationSource),
		"milliamp_hours":  rec.MilliampHours,
		"velocity":        rec.Velocity,
		"bearing":         rec.Bearing,
		"distance":        rec.Distance,
		"dop":             rec.DOP,
		"journey_id":      rec.JourneyID,
		"journey_count":   rec.JourneyCount,
		"health_method":   nullable(rec.HealthMethod),
		"health_text":     nullable(rec.HealthText),
		"voltage_mode":    nullable(rec.VoltageMode),
		"mode":            nullable(rec.Mode),
		"previous_mode":   nullable(rec.PreviousMode),
		"location_event":  rec.LocationEvent,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO telemetry (
			device_id, serial_number, fleet, data_type, ts, ttl,
			temperature, humidity, pressure, motion, voltage,
			latitude, longitude, location_source, milliamp_hours,
			velocity, bearing, distance, dop, journey_id, journey_count,
			health_method, health_text, voltage_mode, mode, previous_mode, location_event
		)
		VALUES (
			@device_id, @serial_number, @fleet, @data_type, @ts, @ttl,
			@temperature, @humidity, @pressure, @motion, @voltage,
			@latitude, @longitude, @location_source, @milliamp_hours,
			@velocity, @bearing, @distance, @dop, @journey_id, @journey_count,
			@health_method, @health_text, @voltage_mode, @mode, @previous_mode, @location_event
		)
		ON CONFLICT (device_id, data_type, ts) DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryTelemetry(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.TelemetryRecord], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT device_id, serial_number, fleet, data_type, ts, ttl,
			temperature, humidity, pressure, motion, voltage,
			latitude, longitude, location_source, milliamp_hours,
			velocity, bearing, distance, dop, journey_id, journey_count,
			health_method, health_text, voltage_mode, mode, previous_mode, location_event,
			count(*) OVER () AS count
		FROM telemetry
		WHERE %s
		ORDER BY %s %s
		OFFSET @offset LIMIT @limit
	`, where, condition.SortBy(), condition.SortOrder())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.TelemetryRecord]{}, err
	}

	var serialNumber, fleet, locationSource, healthMethod, healthText, voltageMode, mode, previousMode *string
	var count int64

	var rec types.TelemetryRecord
	records := make([]types.TelemetryRecord, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&rec.DeviceID, &serialNumber, &fleet, &rec.DataType, &rec.Timestamp, &rec.TTL,
		&rec.Temperature, &rec.Humidity, &rec.Pressure, &rec.Motion, &rec.Voltage,
		&rec.Latitude, &rec.Longitude, &locationSource, &rec.MilliampHours,
		&rec.Velocity, &rec.Bearing, &rec.Distance, &rec.DOP, &rec.JourneyID, &rec.JourneyCount,
		&healthMethod, &healthText, &voltageMode, &mode, &previousMode, &rec.LocationEvent,
		&count,
	}, func() error {
		r := rec
		r.SerialNumber = deref(serialNumber)
		r.Fleet = deref(fleet)
		r.LocationSource = deref(locationSource)
		r.HealthMethod = deref(healthMethod)
		r.HealthText = deref(healthText)
		r.VoltageMode = deref(voltageMode)
		r.Mode = deref(mode)
		r.PreviousMode = deref(previousMode)
		records = append(records, r)
		return nil
	})
	if err != nil {
		return types.Collection[types.TelemetryRecord]{}, err
	}

	return types.Collection[types.TelemetryRecord]{
		Data:       records,
		Count:      uint64(len(records)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
