package watchdog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/storage"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func TestSilentDevicesAreMarkedOffline(t *testing.T) {
	is := is.New(t)

	store := &DeviceStoreMock{
		QueryDeviceStatesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DeviceState], error) {
			return types.Collection[types.DeviceState]{
				Data: []types.DeviceState{
					{DeviceID: "dev:1", Status: types.DeviceStatusOnline},
					{DeviceID: "dev:2", Status: types.DeviceStatusOnline},
				},
				Count: 2,
			}, nil
		},
		SetDeviceStatusFunc: func(ctx context.Context, deviceID, status string) error { return nil },
	}

	w := New(store, 10*time.Minute).(*watchdogImpl)
	w.markSilentDevicesOffline(context.Background())

	is.Equal(1, len(store.QueryDeviceStatesCalls()))
	is.Equal(2, len(store.SetDeviceStatusCalls()))
	is.Equal("dev:1", store.SetDeviceStatusCalls()[0].DeviceID)
	is.Equal(types.DeviceStatusOffline, store.SetDeviceStatusCalls()[0].Status)
}

func TestQueryFailureMarksNothing(t *testing.T) {
	is := is.New(t)

	store := &DeviceStoreMock{
		QueryDeviceStatesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DeviceState], error) {
			return types.Collection[types.DeviceState]{}, errors.New("connection refused")
		},
		SetDeviceStatusFunc: func(ctx context.Context, deviceID, status string) error { return nil },
	}

	w := New(store, 10*time.Minute).(*watchdogImpl)
	w.markSilentDevicesOffline(context.Background())

	is.Equal(0, len(store.SetDeviceStatusCalls()))
}

func TestOneFailedUpdateDoesNotStopTheSweep(t *testing.T) {
	is := is.New(t)

	store := &DeviceStoreMock{
		QueryDeviceStatesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DeviceState], error) {
			return types.Collection[types.DeviceState]{
				Data: []types.DeviceState{
					{DeviceID: "dev:1"},
					{DeviceID: "dev:2"},
				},
				Count: 2,
			}, nil
		},
		SetDeviceStatusFunc: func(ctx context.Context, deviceID, status string) error {
			if deviceID == "dev:1" {
				return errors.New("write throttled")
			}
			return nil
		},
	}

	w := New(store, 10*time.Minute).(*watchdogImpl)
	w.markSilentDevicesOffline(context.Background())

	is.Equal(2, len(store.SetDeviceStatusCalls()))
}
