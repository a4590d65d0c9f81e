package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	"github.com/samber/lo"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/storage"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func TestMissingSerialNumberRejectedWithoutWrites(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{Device: "dev:1", File: FileTracking})

	is.True(errors.Is(err, ErrSerialNumberRequired))
	is.Equal(0, len(store.AddTelemetryCalls()))
	is.Equal(0, len(store.PatchDeviceStateCalls()))
}

func TestGpsTrackingNoSatEndToEnd(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := newTestService(t)

	deviceID, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileGpsTracking,
		When:         lo.ToPtr(int64(1000)),
		Status:       "no-sat",
		BestLat:      lo.ToPtr(1.0),
		BestLon:      lo.ToPtr(2.0),
	})

	is.NoErr(err)
	is.Equal("dev:1", deviceID)

	tracking := telemetryOfType(store, types.DataTypeTracking)
	is.Equal(1, len(tracking))
	is.Equal(int64(1000000), tracking[0].Timestamp)
	is.Equal(1.0, *tracking[0].Latitude)
	is.Equal(2.0, *tracking[0].Longitude)

	is.Equal(1, len(store.AddLocationCalls()))
	is.Equal(int64(1000000), store.AddLocationCalls()[0].Rec.Timestamp)

	is.Equal(1, len(store.PatchDeviceStateCalls()))
	patch := store.PatchDeviceStateCalls()[0].Patch
	is.True(patch.GpsNoSat != nil)
	is.True(*patch.GpsNoSat)
	is.Equal(int64(1000000), patch.LastSeen)

	is.Equal(1, len(store.AddAlertCalls()))
	alert := store.AddAlertCalls()[0].Alert
	is.Equal(types.AlertTypeGpsNoSat, alert.Type)
	is.Equal("alert_dev:1_1700000000000_a1b2c3d4", alert.ID)
	is.Equal("false", alert.Acknowledged)
	is.Equal(int64(1000000), alert.EventTimestamp)

	is.Equal(1, len(msgCtx.PublishOnTopicCalls()))
	is.Equal("alerts.alertCreated", msgCtx.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestNoSatAlertSuppressedWhenAlreadyFlagged(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := newTestService(t)

	store.GetDeviceStateFunc = func(ctx context.Context, deviceID string) (types.DeviceState, error) {
		return types.DeviceState{DeviceID: deviceID, GpsNoSat: true}, nil
	}

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileGpsTracking,
		When:         lo.ToPtr(int64(1000)),
		Status:       "no-sat",
		BestLat:      lo.ToPtr(1.0),
		BestLon:      lo.ToPtr(2.0),
	})

	is.NoErr(err)
	is.Equal(0, len(store.AddAlertCalls()))
	is.Equal(0, len(msgCtx.PublishOnTopicCalls()))
}

func TestAlertCheckSuppressedOnStateReadFailure(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	store.GetDeviceStateFunc = func(ctx context.Context, deviceID string) (types.DeviceState, error) {
		return types.DeviceState{}, errors.New("connection refused")
	}

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileGpsTracking,
		When:         lo.ToPtr(int64(1000)),
		Status:       "no-sat",
		BestLat:      lo.ToPtr(1.0),
		BestLon:      lo.ToPtr(2.0),
	})

	// best effort all the way: the event still succeeds, no alert is raised
	is.NoErr(err)
	is.Equal(0, len(store.AddAlertCalls()))
	is.Equal(1, len(store.AddLocationCalls()))
}

func TestGpsPowerSaveAlertFiresOnTransitionOnly(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	raw := RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileTracking,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"gpsPowerSaving": true},
	}

	_, err := svc.HandleEvent(context.Background(), raw)
	is.NoErr(err)
	is.Equal(1, len(store.AddAlertCalls()))
	is.Equal(types.AlertTypeGpsPowerSave, store.AddAlertCalls()[0].Alert.Type)

	// flag now on file: identical event raises nothing
	store.GetDeviceStateFunc = func(ctx context.Context, deviceID string) (types.DeviceState, error) {
		return types.DeviceState{DeviceID: deviceID, GpsPowerSaving: true}, nil
	}

	_, err = svc.HandleEvent(context.Background(), raw)
	is.NoErr(err)
	is.Equal(1, len(store.AddAlertCalls()))
}

func TestLowBatteryAlertFiresOnEveryQualifyingEvent(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	raw := RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileHealth,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"voltage": 2.5, "text": "boot (brown-out & hard reset) restarted"},
	}

	_, err := svc.HandleEvent(context.Background(), raw)
	is.NoErr(err)
	_, err = svc.HandleEvent(context.Background(), raw)
	is.NoErr(err)

	is.Equal(2, len(store.AddAlertCalls()))
	is.Equal(types.AlertTypeLowBattery, store.AddAlertCalls()[0].Alert.Type)
	is.Equal(2.5, *store.AddAlertCalls()[0].Alert.Value)
	is.Equal(3.0, *store.AddAlertCalls()[0].Alert.Threshold)
}

func TestLowBatteryAlertRequiresRestartMessage(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileHealth,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"voltage": 2.5, "text": "periodic health check"},
	})

	is.NoErr(err)
	is.Equal(0, len(store.AddAlertCalls()))
}

func TestJourneyFirstPointClosesPreviousJourney(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileGpsTracking,
		When:         lo.ToPtr(int64(2000)),
		BestLat:      lo.ToPtr(1.0),
		BestLon:      lo.ToPtr(2.0),
		Body:         map[string]any{"journey": 2000.0, "jcount": 1.0, "distance": 12.5},
	})

	is.NoErr(err)

	is.Equal(1, len(store.CloseLatestActiveJourneyBeforeCalls()))
	is.Equal(int64(2000), store.CloseLatestActiveJourneyBeforeCalls()[0].JourneyID)

	is.Equal(1, len(store.UpsertJourneyPointCalls()))
	point := store.UpsertJourneyPointCalls()[0].Point
	is.Equal(int64(2000), point.JourneyID)
	is.Equal(int64(1), point.PointCount)
	is.Equal(12.5, point.Distance)
}

func TestJourneySkippedWithoutSequenceNumber(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileGpsTracking,
		When:         lo.ToPtr(int64(2000)),
		BestLat:      lo.ToPtr(1.0),
		BestLon:      lo.ToPtr(2.0),
		Body:         map[string]any{"journey": 2000.0},
	})

	is.NoErr(err)
	is.Equal(0, len(store.UpsertJourneyPointCalls()))
	is.Equal(0, len(store.CloseLatestActiveJourneyBeforeCalls()))
}

func TestSubsequentJourneyPointDoesNotCloseAnything(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileGpsTracking,
		When:         lo.ToPtr(int64(2060)),
		BestLat:      lo.ToPtr(1.0),
		BestLon:      lo.ToPtr(2.0),
		Body:         map[string]any{"journey": 2000.0, "jcount": 4.0, "distance": 30.0},
	})

	is.NoErr(err)
	is.Equal(0, len(store.CloseLatestActiveJourneyBeforeCalls()))
	is.Equal(1, len(store.UpsertJourneyPointCalls()))
	is.Equal(int64(4), store.UpsertJourneyPointCalls()[0].Point.PointCount)
}

func TestModeChangeRecordedAgainstPreviousMode(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	store.GetDeviceStateFunc = func(ctx context.Context, deviceID string) (types.DeviceState, error) {
		return types.DeviceState{DeviceID: deviceID, CurrentMode: "demo"}, nil
	}

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileTracking,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"mode": "transit"},
	})

	is.NoErr(err)

	modeChanges := lo.Filter(telemetryOfType(store, types.DataTypeTelemetry), func(rec types.TelemetryRecord, _ int) bool {
		return rec.Mode != ""
	})
	is.Equal(1, len(modeChanges))
	is.Equal("transit", modeChanges[0].Mode)
	is.Equal("demo", modeChanges[0].PreviousMode)

	is.Equal(1, len(store.ClearPendingModeCalls()))
	is.Equal("transit", store.ClearPendingModeCalls()[0].Mode)

	// transit keeps journeys open
	is.Equal(0, len(store.CloseActiveJourneysCalls()))

	patch := store.PatchDeviceStateCalls()[0].Patch
	is.Equal("transit", *patch.CurrentMode)
}

func TestFirstReportedModeIsNotRecordedAsTransition(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileTracking,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"mode": "demo"},
	})

	is.NoErr(err)

	modeChanges := lo.Filter(telemetryOfType(store, types.DataTypeTelemetry), func(rec types.TelemetryRecord, _ int) bool {
		return rec.Mode != ""
	})
	is.Equal(0, len(modeChanges))

	patch := store.PatchDeviceStateCalls()[0].Patch
	is.Equal("demo", *patch.CurrentMode)
}

func TestLeavingTransitModeClosesAllActiveJourneys(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	store.GetDeviceStateFunc = func(ctx context.Context, deviceID string) (types.DeviceState, error) {
		return types.DeviceState{DeviceID: deviceID, CurrentMode: "transit"}, nil
	}

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileTracking,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"mode": "demo"},
	})

	is.NoErr(err)
	is.Equal(1, len(store.CloseActiveJourneysCalls()))
	is.Equal("dev:1", store.CloseActiveJourneysCalls()[0].DeviceID)
}

func TestPowerLogOnUsbWritesNoPowerRecord(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FilePowerLog,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"voltage": 5.1, "voltage_mode": "usb"},
	})

	is.NoErr(err)
	is.Equal(0, len(telemetryOfType(store, types.DataTypePower)))

	// the device snapshot still learns about the reading
	patch := store.PatchDeviceStateCalls()[0].Patch
	is.True(patch.LastPower != nil)
	is.Equal(5.1, *patch.LastPower.Voltage)
}

func TestPowerLogOnBatteryWritesPowerRecord(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FilePowerLog,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"voltage": 3.9, "milliamp_hours": 120.0, "voltage_mode": "lipo"},
	})

	is.NoErr(err)

	power := telemetryOfType(store, types.DataTypePower)
	is.Equal(1, len(power))
	is.Equal(3.9, *power[0].Voltage)
	is.Equal(120.0, *power[0].MilliampHours)
}

func TestHealthVoltageModeUpdatesUsbPowered(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileHealth,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"method": "health", "text": "ok", "voltage": 4.1, "voltage_mode": "usb"},
	})

	is.NoErr(err)

	patch := store.PatchDeviceStateCalls()[0].Patch
	is.True(patch.UsbPowered != nil)
	is.True(*patch.UsbPowered)
	is.Equal(4.1, *patch.Voltage)

	health := telemetryOfType(store, types.DataTypeHealth)
	is.Equal(1, len(health))
	is.Equal("usb", health[0].VoltageMode)
}

func TestCommandAckWithoutIDIsNoOp(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileCommandAck,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"status": "done"},
	})

	is.NoErr(err)
	is.Equal(0, len(store.UpdateCommandAckCalls()))
}

func TestCommandAckUpdatesCommandRow(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileCommandAck,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"cmd_id": "cmd-7", "status": "executed", "executed_at": 999.0},
	})

	is.NoErr(err)
	is.Equal(1, len(store.UpdateCommandAckCalls()))
	ack := store.UpdateCommandAckCalls()[0].Ack
	is.Equal("cmd-7", ack.CommandID)
	is.Equal("executed", ack.Status)
	is.Equal(int64(999000), ack.ExecutedAt)
}

func TestExplicitAlertEventPersistsAndPublishes(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileAlert,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"type": "geofence", "message": "left the fence", "value": 420.0},
	})

	is.NoErr(err)
	is.Equal(1, len(store.AddAlertCalls()))
	is.Equal("geofence", store.AddAlertCalls()[0].Alert.Type)
	is.Equal(420.0, *store.AddAlertCalls()[0].Alert.Value)
	is.Equal(1, len(msgCtx.PublishOnTopicCalls()))
}

func TestNotecardSwapRecordsActivityAndPublishes(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := newTestService(t)

	svc.aliases = &AliasResolverMock{
		ResolveFunc: func(ctx context.Context, serialNumber, notecardID string) (Resolution, error) {
			return Resolution{DeviceID: "dev:old", IsSwap: true, OldDeviceID: "card:old"}, nil
		},
	}

	deviceID, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "card:new",
		SerialNumber: "SN1",
		File:         FileSession,
		When:         lo.ToPtr(int64(1000)),
	})

	is.NoErr(err)
	is.Equal("dev:old", deviceID)

	is.Equal(1, len(store.AddActivityCalls()))
	activity := store.AddActivityCalls()[0].Activity
	is.Equal(types.ActivityNotecardSwap, activity.Type)
	is.Equal("card:old", activity.Data["oldNotecardID"])
	is.Equal("card:new", activity.Data["newNotecardID"])

	is.Equal(1, len(msgCtx.PublishOnTopicCalls()))
	is.Equal("device.notecardSwapped", msgCtx.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestPrimaryWriteFailureFailsTheEvent(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	store.AddTelemetryFunc = func(ctx context.Context, rec types.TelemetryRecord) error {
		return errors.New("write throttled")
	}

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileTracking,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"temperature": 21.5},
	})

	is.True(err != nil)
}

func TestBestEffortFailureDoesNotFailTheEvent(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	store.ClearPendingModeFunc = func(ctx context.Context, deviceID, mode string) error {
		return errors.New("conditional check failed")
	}
	store.CloseActiveJourneysFunc = func(ctx context.Context, deviceID string) error {
		return errors.New("index unavailable")
	}

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileTracking,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"mode": "demo"},
	})

	is.NoErr(err)
}

func TestRecordTTLUsesRetentionWindow(t *testing.T) {
	is := is.New(t)
	svc, store, _ := newTestService(t)

	_, err := svc.HandleEvent(context.Background(), RawEvent{
		Device:       "dev:1",
		SerialNumber: "SN1",
		File:         FileTracking,
		When:         lo.ToPtr(int64(1000)),
		Body:         map[string]any{"temperature": 21.5},
	})

	is.NoErr(err)

	recs := telemetryOfType(store, types.DataTypeTelemetry)
	is.Equal(1, len(recs))
	is.Equal(int64(1700000000+90*24*3600), recs[0].TTL)
}

func newTestService(t *testing.T) (*service, *StoreMock, *messaging.MsgContextMock) {
	t.Helper()

	store := &StoreMock{
		AddTelemetryFunc:     func(ctx context.Context, rec types.TelemetryRecord) error { return nil },
		AddLocationFunc:      func(ctx context.Context, rec types.LocationRecord) error { return nil },
		PatchDeviceStateFunc: func(ctx context.Context, patch types.DeviceStatePatch) error { return nil },
		ClearPendingModeFunc: func(ctx context.Context, deviceID, mode string) error { return nil },
		GetDeviceStateFunc: func(ctx context.Context, deviceID string) (types.DeviceState, error) {
			return types.DeviceState{}, storage.ErrNoRows
		},
		UpsertJourneyPointFunc:             func(ctx context.Context, point types.JourneyPoint) error { return nil },
		CloseLatestActiveJourneyBeforeFunc: func(ctx context.Context, deviceID string, journeyID int64) error { return nil },
		CloseActiveJourneysFunc:            func(ctx context.Context, deviceID string) error { return nil },
		AddAlertFunc:                       func(ctx context.Context, alert types.Alert) error { return nil },
		UpdateCommandAckFunc:               func(ctx context.Context, ack types.CommandAck) error { return nil },
		AddActivityFunc:                    func(ctx context.Context, activity types.Activity) error { return nil },
	}

	resolver := &AliasResolverMock{
		ResolveFunc: func(ctx context.Context, serialNumber, notecardID string) (Resolution, error) {
			return Resolution{DeviceID: notecardID}, nil
		},
	}

	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}

	svc := New(store, resolver, msgCtx, Config{}).(*service)
	svc.now = func() time.Time { return time.Unix(1700000000, 0).UTC() }
	svc.alertSuffix = func() string { return "a1b2c3d4" }

	return svc, store, msgCtx
}

func telemetryOfType(store *StoreMock, dataType string) []types.TelemetryRecord {
	recs := []types.TelemetryRecord{}
	for _, call := range store.AddTelemetryCalls() {
		if call.Rec.DataType == dataType {
			recs = append(recs, call.Rec)
		}
	}
	return recs
}
