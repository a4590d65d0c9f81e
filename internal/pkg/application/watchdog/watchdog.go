package watchdog

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/storage"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

//go:generate moq -rm -out devicestore_mock.go . DeviceStore
type DeviceStore interface {
	QueryDeviceStates(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DeviceState], error)
	SetDeviceStatus(ctx context.Context, deviceID, status string) error
}

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	store DeviceStore

	interval     time.Duration
	offlineAfter time.Duration

	done chan bool
}

func New(store DeviceStore, offlineAfter time.Duration) Watchdog {
	return &watchdogImpl{
		store:        store,
		interval:     time.Minute,
		offlineAfter: offlineAfter,
		done:         make(chan bool),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	w.done <- true
}

func (w *watchdogImpl) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.markSilentDevicesOffline(ctx)
		}
	}
}

// markSilentDevicesOffline flags every online device that has not been heard
// from within the configured window. Purely a dashboard signal: the next
// inbound event flips the device back to online.
func (w *watchdogImpl) markSilentDevicesOffline(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	cutoff := time.Now().UTC().Add(-w.offlineAfter)

	silent, err := w.store.QueryDeviceStates(ctx,
		storage.WithStatus(types.DeviceStatusOnline),
		storage.WithLastSeenBefore(cutoff),
	)
	if err != nil {
		log.Error("could not query online devices", "err", err.Error())
		return
	}

	for _, device := range silent.Data {
		err = w.store.SetDeviceStatus(ctx, device.DeviceID, types.DeviceStatusOffline)
		if err != nil {
			log.Error("could not mark device offline", "device_id", device.DeviceID, "err", err.Error())
			continue
		}

		log.Info("device marked offline", "device_id", device.DeviceID, "last_seen", device.LastSeen)
	}
}
