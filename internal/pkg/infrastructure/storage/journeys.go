package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// UpsertJourneyPoint folds one tracking point into its journey aggregate.
// start_time is written once (first point wins), end_time and point_count are
// overwritten, total_distance accumulates.
func (s *Storage) UpsertJourneyPoint(ctx context.Context, point types.JourneyPoint) error {
	if point.DeviceID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"device_id": point.DeviceID,
		// journey ids are session start times in seconds; persisted times are ms
		"journey_id":  point.JourneyID,
		"start_time":  point.JourneyID * 1000,
		"end_time":    point.Time * 1000,
		"point_count": point.PointCount,
		"distance":    point.Distance,
		"ttl":         point.TTL,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO journeys (device_id, journey_id, status, start_time, end_time, point_count, total_distance, ttl)
		VALUES (@device_id, @journey_id, 'active', @start_time, @end_time, @point_count, @distance, @ttl)
		ON CONFLICT (device_id, journey_id) DO UPDATE SET
			status = 'active',
			end_time = EXCLUDED.end_time,
			point_count = EXCLUDED.point_count,
			total_distance = journeys.total_distance + @distance,
			ttl = EXCLUDED.ttl,
			updated_at = CURRENT_TIMESTAMP
	`, args)
	if err != nil {
		return err
	}

	return nil
}

// CloseLatestActiveJourneyBefore completes the most recent active journey
// whose id precedes journeyID. At most one journey is closed.
func (s *Storage) CloseLatestActiveJourneyBefore(ctx context.Context, deviceID string, journeyID int64) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE journeys
		SET status = 'completed', updated_at = CURRENT_TIMESTAMP
		WHERE (device_id, journey_id) = (
			SELECT device_id, journey_id
			FROM journeys
			WHERE device_id = @device_id AND status = 'active' AND journey_id < @journey_id
			ORDER BY journey_id DESC
			LIMIT 1
		)
	`, pgx.NamedArgs{
		"device_id":  deviceID,
		"journey_id": journeyID,
	})
	return err
}

// CloseActiveJourneys completes every active journey for a device.
func (s *Storage) CloseActiveJourneys(ctx context.Context, deviceID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE journeys
		SET status = 'completed', updated_at = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND status = 'active'
	`, pgx.NamedArgs{
		"device_id": deviceID,
	})
	return err
}

func (s *Storage) QueryJourneys(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.JourneyRecord], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "journey_id"
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT device_id, journey_id, status, start_time, end_time, point_count, total_distance, ttl, updated_at,
			count(*) OVER () AS count
		FROM journeys
		WHERE %s
		ORDER BY %s %s
		OFFSET @offset LIMIT @limit
	`, condition.Where(), condition.SortBy(), condition.SortOrder())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.JourneyRecord]{}, err
	}

	var journey types.JourneyRecord
	var count int64

	journeys := make([]types.JourneyRecord, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&journey.DeviceID, &journey.JourneyID, &journey.Status, &journey.StartTime,
		&journey.EndTime, &journey.PointCount, &journey.TotalDistance, &journey.TTL,
		&journey.UpdatedAt, &count,
	}, func() error {
		journeys = append(journeys, journey)
		return nil
	})
	if err != nil {
		return types.Collection[types.JourneyRecord]{}, err
	}

	return types.Collection[types.JourneyRecord]{
		Data:       journeys,
		Count:      uint64(len(journeys)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
