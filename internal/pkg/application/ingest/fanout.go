package ingest

import (
	"context"
	"errors"

	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/storage"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// fanOut routes one canonical event to every downstream view it qualifies
// for. The previous device state is read once, up front: the mode-change
// comparison and the alert edge triggers both need the on-file values from
// before this event's own state upsert lands.
func (s *service) fanOut(ctx context.Context, ev canonicalEvent) error {
	outcomes := make([]outcome, 0, 8)

	prev, prevErr := s.store.GetDeviceState(ctx, ev.DeviceID)
	prevKnown := prevErr == nil
	if errors.Is(prevErr, storage.ErrNoRows) {
		prevErr = nil
	}
	if prevErr != nil {
		outcomes = append(outcomes, stepDegraded("read device state", prevErr))
	}

	ttl := s.ttl()
	patch := s.basePatch(ev)

	switch ev.EventType {
	case FileTracking:
		outcomes = append(outcomes, s.writeEnvironmentTelemetry(ctx, ev, ttl, &patch))

		saving, _ := bodyBool(ev.Body, "gpsPowerSaving")
		if saving {
			outcomes = append(outcomes, s.checkGpsPowerSave(ctx, ev, prev, prevErr))
		}

	case FilePowerLog:
		outcomes = append(outcomes, s.writePowerTelemetry(ctx, ev, ttl, &patch))

	case FileHealth:
		outcomes = append(outcomes, s.writeHealthTelemetry(ctx, ev, ttl, &patch))
		outcomes = append(outcomes, s.checkLowBattery(ctx, ev))

	case FileGeolocate:
		if ev.Location != nil {
			outcomes = append(outcomes, s.writeGeolocateTelemetry(ctx, ev, ttl))
		}

	case FileGpsTracking:
		outcomes = append(outcomes, s.writeGpsTracking(ctx, ev, ttl))
		outcomes = append(outcomes, s.trackJourney(ctx, ev, ttl)...)

		if ev.Status == "no-sat" {
			noSat := true
			patch.GpsNoSat = &noSat
			outcomes = append(outcomes, s.checkNoSat(ctx, ev, prev, prevErr))
		} else {
			noSat := false
			patch.GpsNoSat = &noSat
		}

	case FileAlert:
		outcomes = append(outcomes, s.raiseAlertFromEvent(ctx, ev))

	case FileCommandAck:
		outcomes = append(outcomes, s.updateCommandAck(ctx, ev))
	}

	if ev.Location != nil {
		outcomes = append(outcomes, s.writeLocationHistory(ctx, ev, ttl))
		patch.LastLocation = ev.Location
	}

	if mode, ok := bodyString(ev.Body, "mode"); ok && mode != "" {
		outcomes = append(outcomes, s.recordModeChange(ctx, ev, mode, prev, prevKnown, ttl))

		patch.CurrentMode = &mode

		err := s.store.ClearPendingMode(ctx, ev.DeviceID, mode)
		if err != nil {
			outcomes = append(outcomes, stepDegraded("clear pending mode", err))
		}

		if mode != ModeTransit {
			err = s.store.CloseActiveJourneys(ctx, ev.DeviceID)
			if err != nil {
				outcomes = append(outcomes, stepDegraded("close active journeys", err))
			}
		}
	}

	err := s.store.PatchDeviceState(ctx, patch)
	if err != nil {
		outcomes = append(outcomes, stepFatal("update device state", err))
	}

	return reduce(ctx, outcomes)
}

func (s *service) ttl() int64 {
	return s.now().Unix() + s.config.retentionSeconds()
}

// basePatch carries the fields every event updates, plus whatever the
// session info contributed. Event-type branches add their own fields on top.
func (s *service) basePatch(ev canonicalEvent) types.DeviceStatePatch {
	online := types.DeviceStatusOnline

	patch := types.DeviceStatePatch{
		DeviceID: ev.DeviceID,
		Status:   &online,
		LastSeen: ev.Timestamp * 1000,
	}

	if ev.SerialNumber != "" {
		patch.SerialNumber = &ev.SerialNumber
	}
	if ev.Fleet != "" {
		patch.Fleet = &ev.Fleet
	}

	if ev.Session != nil {
		if ev.Session.FirmwareVersion != "" {
			patch.FirmwareVersion = &ev.Session.FirmwareVersion
		}
		if ev.Session.NotecardVersion != "" {
			patch.NotecardVersion = &ev.Session.NotecardVersion
		}
		if ev.Session.NotecardSku != "" {
			patch.NotecardSku = &ev.Session.NotecardSku
		}
		if ev.Session.UsbPowered != nil {
			patch.UsbPowered = ev.Session.UsbPowered
		}
	}

	return patch
}

func (s *service) baseRecord(ev canonicalEvent, dataType string, ttl int64) types.TelemetryRecord {
	return types.TelemetryRecord{
		DeviceID:     ev.DeviceID,
		SerialNumber: ev.SerialNumber,
		Fleet:        ev.Fleet,
		DataType:     dataType,
		Timestamp:    ev.Timestamp * 1000,
		TTL:          ttl,
	}
}

func (s *service) writeEnvironmentTelemetry(ctx context.Context, ev canonicalEvent, ttl int64, patch *types.DeviceStatePatch) outcome {
	rec := s.baseRecord(ev, types.DataTypeTelemetry, ttl)

	snapshot := types.TelemetrySnapshot{}

	if v, ok := bodyFloat(ev.Body, "temperature"); ok {
		rec.Temperature = &v
		snapshot.Temperature = &v
	}
	if v, ok := bodyFloat(ev.Body, "humidity"); ok {
		rec.Humidity = &v
		snapshot.Humidity = &v
	}
	if v, ok := bodyFloat(ev.Body, "pressure"); ok {
		rec.Pressure = &v
		snapshot.Pressure = &v
	}
	if v, ok := bodyBool(ev.Body, "motion"); ok {
		rec.Motion = &v
		snapshot.Motion = &v
	}
	if v, ok := bodyFloat(ev.Body, "voltage"); ok {
		rec.Voltage = &v
	}

	patch.LastTelemetry = &snapshot

	// the lock and power-save flags are authoritative on every tracking
	// event: an absent body value means false, not unknown
	transitLocked, _ := bodyBool(ev.Body, "transitLocked")
	demoLocked, _ := bodyBool(ev.Body, "demoLocked")
	gpsPowerSaving, _ := bodyBool(ev.Body, "gpsPowerSaving")
	patch.TransitLocked = &transitLocked
	patch.DemoLocked = &demoLocked
	patch.GpsPowerSaving = &gpsPowerSaving

	err := s.store.AddTelemetry(ctx, rec)
	if err != nil {
		return stepFatal("write telemetry record", err)
	}
	return stepOk("write telemetry record")
}

// writePowerTelemetry persists a power-series point unless the device is on
// USB power. USB periods write nothing at all; a gap in the power series is
// how downstream charts learn the battery was not in use.
func (s *service) writePowerTelemetry(ctx context.Context, ev canonicalEvent, ttl int64, patch *types.DeviceStatePatch) outcome {
	voltageMode, _ := bodyString(ev.Body, "voltage_mode")
	usb, usbKnown := bodyBool(ev.Body, "usb")
	if ev.Session != nil && ev.Session.UsbPowered != nil {
		usb, usbKnown = *ev.Session.UsbPowered, true
	}

	onUsb := voltageMode == "usb" || (usbKnown && usb)

	voltage, hasVoltage := bodyFloat(ev.Body, "voltage")
	mah, hasMah := bodyFloat(ev.Body, "milliamp_hours")
	temperature, hasTemperature := bodyFloat(ev.Body, "temperature")

	snapshot := types.PowerSnapshot{}
	if hasVoltage {
		snapshot.Voltage = &voltage
		patch.Voltage = &voltage
	}
	if hasMah {
		snapshot.MilliampHours = &mah
	}
	if hasTemperature {
		snapshot.Temperature = &temperature
	}
	patch.LastPower = &snapshot

	if onUsb || (!hasVoltage && !hasMah) {
		return stepOk("write power record")
	}

	rec := s.baseRecord(ev, types.DataTypePower, ttl)
	if hasVoltage {
		rec.Voltage = &voltage
	}
	if hasMah {
		rec.MilliampHours = &mah
	}
	if hasTemperature {
		rec.Temperature = &temperature
	}

	err := s.store.AddTelemetry(ctx, rec)
	if err != nil {
		return stepFatal("write power record", err)
	}
	return stepOk("write power record")
}

func (s *service) writeHealthTelemetry(ctx context.Context, ev canonicalEvent, ttl int64, patch *types.DeviceStatePatch) outcome {
	rec := s.baseRecord(ev, types.DataTypeHealth, ttl)

	rec.HealthMethod, _ = bodyString(ev.Body, "method")
	rec.HealthText, _ = bodyString(ev.Body, "text")
	rec.VoltageMode, _ = bodyString(ev.Body, "voltage_mode")

	if v, ok := bodyFloat(ev.Body, "voltage"); ok {
		rec.Voltage = &v
		// power-log wins if both somehow contributed in one event
		if patch.Voltage == nil {
			patch.Voltage = &v
		}
	}

	if rec.VoltageMode != "" {
		onUsb := rec.VoltageMode == "usb"
		patch.UsbPowered = &onUsb
	}

	err := s.store.AddTelemetry(ctx, rec)
	if err != nil {
		return stepFatal("write health record", err)
	}
	return stepOk("write health record")
}

func (s *service) writeGeolocateTelemetry(ctx context.Context, ev canonicalEvent, ttl int64) outcome {
	rec := s.baseRecord(ev, types.DataTypeTelemetry, ttl)

	rec.Latitude = &ev.Location.Latitude
	rec.Longitude = &ev.Location.Longitude
	rec.LocationSource = ev.Location.Source
	rec.LocationEvent = true

	err := s.store.AddTelemetry(ctx, rec)
	if err != nil {
		return stepFatal("write geolocate record", err)
	}
	return stepOk("write geolocate record")
}

func (s *service) writeGpsTracking(ctx context.Context, ev canonicalEvent, ttl int64) outcome {
	if ev.Location == nil {
		return stepOk("write tracking record")
	}

	rec := s.baseRecord(ev, types.DataTypeTracking, ttl)

	rec.Latitude = &ev.Location.Latitude
	rec.Longitude = &ev.Location.Longitude
	rec.LocationSource = ev.Location.Source

	if v, ok := bodyFloat(ev.Body, "velocity"); ok {
		rec.Velocity = &v
	}
	if v, ok := bodyFloat(ev.Body, "bearing"); ok {
		rec.Bearing = &v
	}
	if v, ok := bodyFloat(ev.Body, "distance"); ok {
		rec.Distance = &v
	}
	if v, ok := bodyFloat(ev.Body, "dop"); ok {
		rec.DOP = &v
	}
	if v, ok := bodyInt(ev.Body, "journey"); ok {
		rec.JourneyID = &v
	}
	if v, ok := bodyInt(ev.Body, "jcount"); ok {
		rec.JourneyCount = &v
	}
	if v, ok := bodyFloat(ev.Body, "temperature"); ok {
		rec.Temperature = &v
	}

	err := s.store.AddTelemetry(ctx, rec)
	if err != nil {
		return stepFatal("write tracking record", err)
	}
	return stepOk("write tracking record")
}

func (s *service) writeLocationHistory(ctx context.Context, ev canonicalEvent, ttl int64) outcome {
	rec := types.LocationRecord{
		DeviceID:     ev.DeviceID,
		SerialNumber: ev.SerialNumber,
		Fleet:        ev.Fleet,
		Timestamp:    ev.Timestamp * 1000,
		TTL:          ttl,

		Latitude:  ev.Location.Latitude,
		Longitude: ev.Location.Longitude,
		Source:    ev.Location.Source,
		Name:      ev.Location.Name,
	}

	if ev.EventType == FileGpsTracking {
		if v, ok := bodyInt(ev.Body, "journey"); ok {
			rec.JourneyID = &v
		}
		if v, ok := bodyInt(ev.Body, "jcount"); ok {
			rec.JourneyCount = &v
		}
	}

	err := s.store.AddLocation(ctx, rec)
	if err != nil {
		return stepFatal("write location history", err)
	}
	return stepOk("write location history")
}

// recordModeChange writes a transition record when the reported mode differs
// from the one on file. The first mode a device ever reports has nothing to
// transition from and is not recorded.
func (s *service) recordModeChange(ctx context.Context, ev canonicalEvent, mode string, prev types.DeviceState, prevKnown bool, ttl int64) outcome {
	if !prevKnown || prev.CurrentMode == "" || prev.CurrentMode == mode {
		return stepOk("record mode change")
	}

	rec := s.baseRecord(ev, types.DataTypeTelemetry, ttl)
	rec.Mode = mode
	rec.PreviousMode = prev.CurrentMode

	err := s.store.AddTelemetry(ctx, rec)
	if err != nil {
		return stepDegraded("record mode change", err)
	}
	return stepOk("record mode change")
}

func (s *service) updateCommandAck(ctx context.Context, ev canonicalEvent) outcome {
	commandID, ok := bodyString(ev.Body, "cmd_id")
	if !ok || commandID == "" {
		return stepOk("update command ack")
	}

	ack := types.CommandAck{
		DeviceID:  ev.DeviceID,
		CommandID: commandID,
	}

	ack.Status, _ = bodyString(ev.Body, "status")
	ack.Message, _ = bodyString(ev.Body, "message")
	if v, ok := bodyInt(ev.Body, "executed_at"); ok {
		ack.ExecutedAt = v * 1000
	}

	err := s.store.UpdateCommandAck(ctx, ack)
	if err != nil {
		return stepFatal("update command ack", err)
	}
	return stepOk("update command ack")
}
