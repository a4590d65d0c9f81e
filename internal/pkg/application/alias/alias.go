package alias

import (
	"context"
	"errors"
	"fmt"

	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/application/ingest"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/storage"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

//go:generate moq -rm -out aliasstore_mock.go . AliasStore
type AliasStore interface {
	GetAlias(ctx context.Context, serialNumber string) (types.DeviceAlias, error)
	SaveAlias(ctx context.Context, alias types.DeviceAlias) error
}

type resolver struct {
	store AliasStore
}

// New returns a storage-backed alias resolver. The serial number is the
// stable identity of a unit; the notecard id changes when the radio module
// is replaced, and the mapping absorbs that so device ids stay stable.
func New(store AliasStore) ingest.AliasResolver {
	return &resolver{store: store}
}

func (r *resolver) Resolve(ctx context.Context, serialNumber, notecardID string) (ingest.Resolution, error) {
	existing, err := r.store.GetAlias(ctx, serialNumber)

	if err != nil {
		if !errors.Is(err, storage.ErrNoRows) {
			return ingest.Resolution{}, fmt.Errorf("could not look up alias for %s: %w", serialNumber, err)
		}

		// first sight of this serial number: the notecard id becomes the
		// device id and keeps it through any later hardware swap
		alias := types.DeviceAlias{
			SerialNumber: serialNumber,
			DeviceID:     notecardID,
			NotecardID:   notecardID,
		}

		err = r.store.SaveAlias(ctx, alias)
		if err != nil {
			return ingest.Resolution{}, fmt.Errorf("could not create alias for %s: %w", serialNumber, err)
		}

		return ingest.Resolution{DeviceID: notecardID}, nil
	}

	if notecardID == "" || existing.NotecardID == notecardID {
		return ingest.Resolution{DeviceID: existing.DeviceID}, nil
	}

	// same unit, new radio
	updated := existing
	updated.NotecardID = notecardID

	err = r.store.SaveAlias(ctx, updated)
	if err != nil {
		return ingest.Resolution{}, fmt.Errorf("could not update alias for %s: %w", serialNumber, err)
	}

	return ingest.Resolution{
		DeviceID:    existing.DeviceID,
		IsSwap:      true,
		OldDeviceID: existing.NotecardID,
	}, nil
}
