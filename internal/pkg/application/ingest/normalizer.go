package ingest

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// resolveTimestamp picks the capture time in seconds. For GPS tracking
// events the fix time is more accurate than the routed timestamp, so it
// wins when present.
func resolveTimestamp(raw RawEvent) int64 {
	if raw.File == FileGpsTracking && raw.WhereWhen != nil && *raw.WhereWhen > 0 {
		return *raw.WhereWhen
	}
	if raw.When != nil && *raw.When > 0 {
		return *raw.When
	}
	if raw.Received != nil && *raw.Received > 0 {
		return int64(*raw.Received)
	}
	return 0
}

// resolveLocation picks the most precise fix present on the envelope.
// GPS beats triangulation, triangulation beats tower. A tier counts as
// present when both coordinates are set, even if either is zero.
func resolveLocation(raw RawEvent) *types.Location {
	if raw.BestLat != nil && raw.BestLon != nil {
		loc := &types.Location{
			Latitude:  *raw.BestLat,
			Longitude: *raw.BestLon,
			Source:    normalizeLocationSource(raw.BestLocationType),
			Name:      raw.BestLocation,
		}
		if raw.WhereWhen != nil {
			loc.Time = *raw.WhereWhen
		}
		return loc
	}

	if raw.TriLat != nil && raw.TriLon != nil {
		loc := &types.Location{
			Latitude:  *raw.TriLat,
			Longitude: *raw.TriLon,
			Source:    types.LocationSourceTriangulation,
			Name:      raw.TriLocation,
		}
		if raw.TriWhen != nil {
			loc.Time = *raw.TriWhen
		}
		return loc
	}

	if raw.TowerLat != nil && raw.TowerLon != nil {
		loc := &types.Location{
			Latitude:  *raw.TowerLat,
			Longitude: *raw.TowerLon,
			Source:    types.LocationSourceTower,
			Name:      raw.TowerLocation,
		}
		if raw.TowerWhen != nil {
			loc.Time = *raw.TowerWhen
		}
		return loc
	}

	return nil
}

func normalizeLocationSource(locationType *string) string {
	if locationType == nil || *locationType == "" {
		return types.LocationSourceGPS
	}

	source := strings.ToLower(*locationType)
	if source == "triangulated" {
		source = types.LocationSourceTriangulation
	}

	return source
}

// resolveSessionInfo extracts firmware and hardware identity from the
// envelope. The firmware fields arrive as embedded JSON strings; a field
// that fails to parse is skipped rather than failing the event. The info
// is omitted entirely when nothing usable survives parsing.
func resolveSessionInfo(ctx context.Context, raw RawEvent) *types.SessionInfo {
	log := logging.GetFromContext(ctx)

	info := &types.SessionInfo{NotecardSku: raw.Sku}

	if raw.FirmwareHost != "" {
		v, err := firmwareVersion(raw.FirmwareHost)
		if err != nil {
			log.Debug("could not parse host firmware info", "err", err.Error())
		} else {
			info.FirmwareVersion = v
		}
	}

	if raw.FirmwareNotecard != "" {
		v, err := firmwareVersion(raw.FirmwareNotecard)
		if err != nil {
			log.Debug("could not parse notecard firmware info", "err", err.Error())
		} else {
			info.NotecardVersion = v
		}
	}

	if usb, ok := resolveUsbPowered(raw); ok {
		info.UsbPowered = &usb
	}

	if info.FirmwareVersion == "" && info.NotecardVersion == "" && info.NotecardSku == "" && info.UsbPowered == nil {
		return nil
	}

	return info
}

// resolveUsbPowered checks the envelope first, then the body. The device
// may report the flag in either place depending on its routing config.
func resolveUsbPowered(raw RawEvent) (bool, bool) {
	if raw.Usb != nil {
		return *raw.Usb, true
	}
	return bodyBool(raw.Body, "usb")
}

func firmwareVersion(encoded string) (string, error) {
	fw := struct {
		Version string `json:"version"`
	}{}

	err := json.Unmarshal([]byte(encoded), &fw)
	if err != nil {
		return "", err
	}

	return fw.Version, nil
}

func resolveGpsStatus(raw RawEvent) string {
	if raw.Status != "" {
		return strings.ToLower(strings.TrimSpace(raw.Status))
	}
	if status, ok := bodyString(raw.Body, "status"); ok {
		return strings.ToLower(strings.TrimSpace(status))
	}
	return ""
}

func bodyString(body map[string]any, key string) (string, bool) {
	if body == nil {
		return "", false
	}
	v, ok := body[key].(string)
	return v, ok
}

func bodyFloat(body map[string]any, key string) (float64, bool) {
	if body == nil {
		return 0, false
	}
	switch v := body[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func bodyInt(body map[string]any, key string) (int64, bool) {
	f, ok := bodyFloat(body, key)
	return int64(f), ok
}

func bodyBool(body map[string]any, key string) (bool, bool) {
	if body == nil {
		return false, false
	}
	v, ok := body[key].(bool)
	return v, ok
}
