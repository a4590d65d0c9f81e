package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// PatchDeviceState upserts the current-state row for a device. Only the
// fields set on the patch are written; created_at survives the upsert.
func (s *Storage) PatchDeviceState(ctx context.Context, patch types.DeviceStatePatch) error {
	if patch.DeviceID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"device_id": patch.DeviceID,
		"last_seen": patch.LastSeen,
	}

	set := []string{"last_seen = @last_seen", "updated_at = CURRENT_TIMESTAMP"}

	setString := func(column string, v *string) {
		if v != nil {
			args[column] = *v
			set = append(set, fmt.Sprintf("%s = @%s", column, column))
		}
	}
	setBool := func(column string, v *bool) {
		if v != nil {
			args[column] = *v
			set = append(set, fmt.Sprintf("%s = @%s", column, column))
		}
	}
	setJSON := func(column string, v any) {
		b, _ := json.Marshal(v)
		args[column] = string(b)
		set = append(set, fmt.Sprintf("%s = @%s", column, column))
	}

	setString("serial_number", patch.SerialNumber)
	setString("fleet", patch.Fleet)
	setString("status", patch.Status)
	setString("current_mode", patch.CurrentMode)
	setString("firmware_version", patch.FirmwareVersion)
	setString("notecard_version", patch.NotecardVersion)
	setString("notecard_sku", patch.NotecardSku)

	setBool("transit_locked", patch.TransitLocked)
	setBool("demo_locked", patch.DemoLocked)
	setBool("gps_power_saving", patch.GpsPowerSaving)
	setBool("gps_no_sat", patch.GpsNoSat)
	setBool("usb_powered", patch.UsbPowered)

	if patch.Voltage != nil {
		args["voltage"] = *patch.Voltage
		set = append(set, "voltage = @voltage")
	}

	if patch.LastLocation != nil {
		setJSON("last_location", patch.LastLocation)
	}
	if patch.LastTelemetry != nil {
		setJSON("last_telemetry", patch.LastTelemetry)
	}
	if patch.LastPower != nil {
		setJSON("last_power", patch.LastPower)
	}

	// insert-if-absent keeps created_at for rows that already exist
	_, err := s.pool.Exec(ctx, `
		INSERT INTO device_state (device_id, last_seen)
		VALUES (@device_id, @last_seen)
		ON CONFLICT (device_id) DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE device_state SET %s WHERE device_id = @device_id
	`, joinSet(set)), args)

	return err
}

// ClearPendingMode clears pending_mode only if the device just reported the
// mode that was pending. The compare is part of the statement so a newer
// pending value set by a concurrent writer cannot be clobbered.
func (s *Storage) ClearPendingMode(ctx context.Context, deviceID, mode string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE device_state
		SET pending_mode = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND pending_mode = @mode
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"mode":      mode,
	})
	return err
}

func (s *Storage) SetPendingMode(ctx context.Context, deviceID, mode string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE device_state
		SET pending_mode = @mode, updated_at = CURRENT_TIMESTAMP
		WHERE device_id = @device_id
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"mode":      mode,
	})
	return err
}

func (s *Storage) SetDeviceStatus(ctx context.Context, deviceID, status string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE device_state
		SET status = @status, updated_at = CURRENT_TIMESTAMP
		WHERE device_id = @device_id
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"status":    status,
	})
	return err
}

func (s *Storage) GetDeviceState(ctx context.Context, deviceID string) (types.DeviceState, error) {
	rows, err := s.pool.Query(ctx, deviceStateQuery+" WHERE device_id = @device_id", pgx.NamedArgs{
		"device_id": deviceID,
	})
	if err != nil {
		return types.DeviceState{}, err
	}

	states, _, err := scanDeviceStates(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DeviceState{}, ErrNoRows
		}
		return types.DeviceState{}, err
	}
	if len(states) == 0 {
		return types.DeviceState{}, ErrNoRows
	}

	return states[0], nil
}

func (s *Storage) QueryDeviceStates(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.DeviceState], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "last_seen"
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY %s %s OFFSET @offset LIMIT @limit`,
		deviceStateQuery, condition.Where(), condition.SortBy(), condition.SortOrder())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.DeviceState]{}, err
	}

	states, count, err := scanDeviceStates(rows)
	if err != nil {
		return types.Collection[types.DeviceState]{}, err
	}

	return types.Collection[types.DeviceState]{
		Data:       states,
		Count:      uint64(len(states)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

const deviceStateQuery = `
	SELECT device_id, serial_number, fleet, status, current_mode, pending_mode,
		transit_locked, demo_locked, gps_power_saving, gps_no_sat,
		last_location, last_telemetry, last_power, voltage,
		firmware_version, notecard_version, notecard_sku, usb_powered,
		last_seen, created_at, updated_at, count(*) OVER () AS count
	FROM device_state`

func scanDeviceStates(rows pgx.Rows) ([]types.DeviceState, int64, error) {
	var state types.DeviceState
	var serialNumber, fleet, currentMode, pendingMode *string
	var firmwareVersion, notecardVersion, notecardSku *string
	var lastLocation, lastTelemetry, lastPower []byte
	var count int64

	states := make([]types.DeviceState, 0)

	_, err := pgx.ForEachRow(rows, []any{
		&state.DeviceID, &serialNumber, &fleet, &state.Status, &currentMode, &pendingMode,
		&state.TransitLocked, &state.DemoLocked, &state.GpsPowerSaving, &state.GpsNoSat,
		&lastLocation, &lastTelemetry, &lastPower, &state.Voltage,
		&firmwareVersion, &notecardVersion, &notecardSku, &state.UsbPowered,
		&state.LastSeen, &state.CreatedAt, &state.UpdatedAt, &count,
	}, func() error {
		st := state
		st.SerialNumber = deref(serialNumber)
		st.Fleet = deref(fleet)
		st.CurrentMode = deref(currentMode)
		st.PendingMode = deref(pendingMode)
		st.FirmwareVersion = deref(firmwareVersion)
		st.NotecardVersion = deref(notecardVersion)
		st.NotecardSku = deref(notecardSku)

		var errs []error
		if lastLocation != nil {
			st.LastLocation = &types.Location{}
			errs = append(errs, json.Unmarshal(lastLocation, st.LastLocation))
		}
		if lastTelemetry != nil {
			st.LastTelemetry = &types.TelemetrySnapshot{}
			errs = append(errs, json.Unmarshal(lastTelemetry, st.LastTelemetry))
		}
		if lastPower != nil {
			st.LastPower = &types.PowerSnapshot{}
			errs = append(errs, json.Unmarshal(lastPower, st.LastPower))
		}

		states = append(states, st)

		return errors.Join(errs...)
	})
	if err != nil {
		return nil, 0, err
	}

	return states, count, nil
}

func joinSet(set []string) string {
	out := ""
	for i, s := range set {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
