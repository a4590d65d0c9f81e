package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/samber/lo"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func testDeviceID() string {
	return "dev:" + uuid.NewString()
}

func TestAddAndQueryTelemetry(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	deviceID := testDeviceID()
	ttl := time.Now().Unix() + 90*24*3600

	for i := 0; i < 3; i++ {
		err := s.AddTelemetry(ctx, types.TelemetryRecord{
			DeviceID:     deviceID,
			DataType:     types.DataTypeTracking,
			Timestamp:    int64(1000000 + i*60000),
			TTL:          ttl,
			Latitude:     lo.ToPtr(62.39),
			Longitude:    lo.ToPtr(17.31),
			JourneyID:    lo.ToPtr(int64(1000)),
			JourneyCount: lo.ToPtr(int64(i + 1)),
		})
		is.NoErr(err)
	}

	collection, err := s.QueryTelemetry(ctx, WithDeviceID(deviceID), WithDataType(types.DataTypeTracking))
	is.NoErr(err)
	is.Equal(uint64(3), collection.TotalCount)

	// duplicate key is a silent no-op
	err = s.AddTelemetry(ctx, types.TelemetryRecord{
		DeviceID:  deviceID,
		DataType:  types.DataTypeTracking,
		Timestamp: 1000000,
		TTL:       ttl,
	})
	is.NoErr(err)

	collection, err = s.QueryTelemetry(ctx, WithDeviceID(deviceID), WithDataType(types.DataTypeTracking))
	is.NoErr(err)
	is.Equal(uint64(3), collection.TotalCount)
}

func TestPatchDeviceStatePreservesUntouchedFields(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	deviceID := testDeviceID()

	err := s.PatchDeviceState(ctx, types.DeviceStatePatch{
		DeviceID:     deviceID,
		SerialNumber: lo.ToPtr("SN1"),
		Status:       lo.ToPtr(types.DeviceStatusOnline),
		CurrentMode:  lo.ToPtr("demo"),
		LastSeen:     1000000,
	})
	is.NoErr(err)

	err = s.PatchDeviceState(ctx, types.DeviceStatePatch{
		DeviceID: deviceID,
		Status:   lo.ToPtr(types.DeviceStatusOnline),
		LastSeen: 2000000,
	})
	is.NoErr(err)

	state, err := s.GetDeviceState(ctx, deviceID)
	is.NoErr(err)
	is.Equal("SN1", state.SerialNumber)
	is.Equal("demo", state.CurrentMode)
	is.Equal(int64(2000000), state.LastSeen)
}

func TestClearPendingModeIsConditional(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	deviceID := testDeviceID()

	err := s.PatchDeviceState(ctx, types.DeviceStatePatch{
		DeviceID: deviceID,
		Status:   lo.ToPtr(types.DeviceStatusOnline),
		LastSeen: 1000000,
	})
	is.NoErr(err)

	err = s.SetPendingMode(ctx, deviceID, "transit")
	is.NoErr(err)

	// reporting a different mode leaves the pending value alone
	err = s.ClearPendingMode(ctx, deviceID, "demo")
	is.NoErr(err)

	state, err := s.GetDeviceState(ctx, deviceID)
	is.NoErr(err)
	is.Equal("transit", state.PendingMode)

	err = s.ClearPendingMode(ctx, deviceID, "transit")
	is.NoErr(err)

	state, err = s.GetDeviceState(ctx, deviceID)
	is.NoErr(err)
	is.Equal("", state.PendingMode)
}

func TestJourneyUpsertAccumulatesDistance(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	deviceID := testDeviceID()
	ttl := time.Now().Unix() + 90*24*3600

	point := types.JourneyPoint{
		DeviceID:   deviceID,
		JourneyID:  1000,
		PointCount: 1,
		Distance:   10,
		Time:       1000,
		TTL:        ttl,
	}

	is.NoErr(s.UpsertJourneyPoint(ctx, point))

	point.PointCount = 2
	point.Distance = 15
	point.Time = 1060
	is.NoErr(s.UpsertJourneyPoint(ctx, point))

	journeys, err := s.QueryJourneys(ctx, WithDeviceID(deviceID))
	is.NoErr(err)
	is.Equal(1, len(journeys.Data))

	journey := journeys.Data[0]
	is.Equal(types.JourneyStatusActive, journey.Status)
	is.Equal(int64(2), journey.PointCount)
	is.Equal(25.0, journey.TotalDistance)
	is.Equal(int64(1000000), journey.StartTime)
	is.Equal(int64(1060000), journey.EndTime)

	// replaying a point overwrites the counter but double-counts distance
	is.NoErr(s.UpsertJourneyPoint(ctx, point))

	journeys, err = s.QueryJourneys(ctx, WithDeviceID(deviceID))
	is.NoErr(err)
	is.Equal(int64(2), journeys.Data[0].PointCount)
	is.Equal(40.0, journeys.Data[0].TotalDistance)
}

func TestCloseLatestActiveJourneyClosesExactlyOne(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	deviceID := testDeviceID()
	ttl := time.Now().Unix() + 90*24*3600

	for _, journeyID := range []int64{1000, 2000} {
		is.NoErr(s.UpsertJourneyPoint(ctx, types.JourneyPoint{
			DeviceID:   deviceID,
			JourneyID:  journeyID,
			PointCount: 1,
			Time:       journeyID,
			TTL:        ttl,
		}))
	}

	is.NoErr(s.CloseLatestActiveJourneyBefore(ctx, deviceID, 3000))

	active, err := s.QueryJourneys(ctx, WithDeviceID(deviceID), WithStatus(types.JourneyStatusActive))
	is.NoErr(err)
	is.Equal(1, len(active.Data))
	is.Equal(int64(1000), active.Data[0].JourneyID)

	is.NoErr(s.CloseActiveJourneys(ctx, deviceID))

	active, err = s.QueryJourneys(ctx, WithDeviceID(deviceID), WithStatus(types.JourneyStatusActive))
	is.NoErr(err)
	is.Equal(0, len(active.Data))
}

func TestAcknowledgeAlert(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	deviceID := testDeviceID()
	alertID := "alert_" + deviceID + "_1700000000000_a1b2c3d4"

	err := s.AddAlert(ctx, types.Alert{
		ID:             alertID,
		DeviceID:       deviceID,
		Type:           types.AlertTypeLowBattery,
		Message:        "device restarted with low battery (2.50V)",
		CreatedAt:      1700000000000,
		EventTimestamp: 1000000,
		Acknowledged:   "false",
		TTL:            time.Now().Unix() + 90*24*3600,
	})
	is.NoErr(err)

	unacked, err := s.QueryAlerts(ctx, WithDeviceID(deviceID), WithAcknowledged("false"))
	is.NoErr(err)
	is.Equal(1, len(unacked.Data))

	is.NoErr(s.AcknowledgeAlert(ctx, alertID))

	unacked, err = s.QueryAlerts(ctx, WithDeviceID(deviceID), WithAcknowledged("false"))
	is.NoErr(err)
	is.Equal(0, len(unacked.Data))

	err = s.AcknowledgeAlert(ctx, "nosuchalert")
	is.True(err != nil)
}

func TestAliasRoundTrip(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	serialNumber := "SN-" + uuid.NewString()

	_, err := s.GetAlias(ctx, serialNumber)
	is.Equal(ErrNoRows, err)

	err = s.SaveAlias(ctx, types.DeviceAlias{
		SerialNumber: serialNumber,
		DeviceID:     "card:1",
		NotecardID:   "card:1",
	})
	is.NoErr(err)

	alias, err := s.GetAlias(ctx, serialNumber)
	is.NoErr(err)
	is.Equal("card:1", alias.DeviceID)

	// swap updates the notecard id but not the device id
	alias.NotecardID = "card:2"
	is.NoErr(s.SaveAlias(ctx, alias))

	alias, err = s.GetAlias(ctx, serialNumber)
	is.NoErr(err)
	is.Equal("card:1", alias.DeviceID)
	is.Equal("card:2", alias.NotecardID)
}
