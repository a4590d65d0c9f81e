package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// checkNoSat raises a gps_no_sat alert on the false to true transition of
// the on-file flag. A failed state read counts as already flagged: on
// infrastructure trouble we prefer a missed alert over a duplicate storm.
func (s *service) checkNoSat(ctx context.Context, ev canonicalEvent, prev types.DeviceState, prevErr error) outcome {
	if prevErr != nil {
		logging.GetFromContext(ctx).Warn("suppressing no-sat alert check, device state unavailable", "device_id", ev.DeviceID)
		return stepDegraded("no-sat alert check", prevErr)
	}

	if prev.GpsNoSat {
		return stepOk("no-sat alert check")
	}

	return s.raiseAlert(ctx, ev, types.Alert{
		Type:    types.AlertTypeGpsNoSat,
		Message: "GPS cannot acquire satellites",
	}, "no-sat alert check")
}

// checkGpsPowerSave is the same edge trigger keyed on the power-save flag.
func (s *service) checkGpsPowerSave(ctx context.Context, ev canonicalEvent, prev types.DeviceState, prevErr error) outcome {
	if prevErr != nil {
		logging.GetFromContext(ctx).Warn("suppressing power-save alert check, device state unavailable", "device_id", ev.DeviceID)
		return stepDegraded("power-save alert check", prevErr)
	}

	if prev.GpsPowerSaving {
		return stepOk("power-save alert check")
	}

	return s.raiseAlert(ctx, ev, types.Alert{
		Type:    types.AlertTypeGpsPowerSave,
		Message: "GPS disabled to conserve battery",
	}, "power-save alert check")
}

// checkLowBattery fires on every qualifying health event. Unlike the edge
// triggers there is no suppression across repeats: each restart under low
// battery is itself the notable event.
func (s *service) checkLowBattery(ctx context.Context, ev canonicalEvent) outcome {
	voltage, ok := bodyFloat(ev.Body, "voltage")
	if !ok || voltage >= s.config.LowBatteryThreshold {
		return stepOk("low-battery alert check")
	}

	text, _ := bodyString(ev.Body, "text")
	if !strings.Contains(text, "restarted") {
		return stepOk("low-battery alert check")
	}

	threshold := s.config.LowBatteryThreshold

	return s.raiseAlert(ctx, ev, types.Alert{
		Type:      types.AlertTypeLowBattery,
		Message:   fmt.Sprintf("device restarted with low battery (%.2fV)", voltage),
		Value:     &voltage,
		Threshold: &threshold,
	}, "low-battery alert check")
}

// raiseAlertFromEvent persists an alert carried verbatim on an explicit
// alert event. The device chose to send it, so no edge logic applies.
func (s *service) raiseAlertFromEvent(ctx context.Context, ev canonicalEvent) outcome {
	alertType, _ := bodyString(ev.Body, "type")
	if alertType == "" {
		alertType = "alert"
	}

	message, _ := bodyString(ev.Body, "message")

	alert := types.Alert{
		Type:    alertType,
		Message: message,
	}

	if v, ok := bodyFloat(ev.Body, "value"); ok {
		alert.Value = &v
	}
	if v, ok := bodyFloat(ev.Body, "threshold"); ok {
		alert.Threshold = &v
	}

	o := s.raiseAlert(ctx, ev, alert, "write alert record")
	if o.err != nil {
		return stepFatal(o.step, o.err)
	}
	return o
}

// raiseAlert fills in the event-derived fields, persists the alert and
// mirrors it to the notification topic. A failed publish degrades rather
// than fails: the alert row already exists and the dashboard will show it.
func (s *service) raiseAlert(ctx context.Context, ev canonicalEvent, alert types.Alert, step string) outcome {
	nowMillis := s.now().UnixMilli()

	alert.ID = fmt.Sprintf("alert_%s_%d_%s", ev.DeviceID, nowMillis, s.alertSuffix())
	alert.DeviceID = ev.DeviceID
	alert.SerialNumber = ev.SerialNumber
	alert.Fleet = ev.Fleet
	alert.CreatedAt = nowMillis
	alert.EventTimestamp = ev.Timestamp * 1000
	alert.Acknowledged = "false"
	alert.TTL = s.ttl()
	alert.Location = ev.Location

	err := s.store.AddAlert(ctx, alert)
	if err != nil {
		return stepDegraded(step, err)
	}

	err = s.messenger.PublishOnTopic(ctx, &types.AlertCreated{
		AlertID:      alert.ID,
		DeviceID:     alert.DeviceID,
		SerialNumber: alert.SerialNumber,
		Fleet:        alert.Fleet,
		AlertType:    alert.Type,
		Message:      alert.Message,
		Value:        alert.Value,
		Timestamp:    alert.EventTimestamp,
		Location:     alert.Location,
	})
	if err != nil {
		return stepDegraded(step, err)
	}

	return stepOk(step)
}
