package ingest

import (
	"context"

	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// trackJourney folds one tracking point into the journey aggregate. A point
// missing its journey id or sequence number is skipped outright. The first
// point of a new journey closes whatever older journey was still active for
// the device, so an abrupt trip start never leaves two journeys open.
func (s *service) trackJourney(ctx context.Context, ev canonicalEvent, ttl int64) []outcome {
	journeyID, hasJourney := bodyInt(ev.Body, "journey")
	pointCount, hasCount := bodyInt(ev.Body, "jcount")
	if !hasJourney || !hasCount || journeyID == 0 || pointCount == 0 {
		return nil
	}

	outcomes := make([]outcome, 0, 2)

	if pointCount == 1 {
		err := s.store.CloseLatestActiveJourneyBefore(ctx, ev.DeviceID, journeyID)
		if err != nil {
			outcomes = append(outcomes, stepDegraded("close previous journey", err))
		}
	}

	distance, _ := bodyFloat(ev.Body, "distance")

	err := s.store.UpsertJourneyPoint(ctx, types.JourneyPoint{
		DeviceID:   ev.DeviceID,
		JourneyID:  journeyID,
		PointCount: pointCount,
		Distance:   distance,
		Time:       ev.Timestamp,
		TTL:        ttl,
	})
	if err != nil {
		outcomes = append(outcomes, stepFatal("upsert journey", err))
		return outcomes
	}

	outcomes = append(outcomes, stepOk("upsert journey"))
	return outcomes
}
