package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/application/ingest"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/storage"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-telemetry-ingest/api")

//go:generate moq -rm -out querystore_mock.go . QueryStore
type QueryStore interface {
	GetDeviceState(ctx context.Context, deviceID string) (types.DeviceState, error)
	QueryDeviceStates(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DeviceState], error)
	QueryTelemetry(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.TelemetryRecord], error)
	QueryLocations(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.LocationRecord], error)
	QueryJourneys(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.JourneyRecord], error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	AcknowledgeAlert(ctx context.Context, alertID string) error
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc ingest.Ingest, store QueryStore) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v0", func(r chi.Router) {
		r.Post("/events", ingestEventHandler(log, svc))

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", queryDevicesHandler(log, store))
			r.Get("/{deviceID}", getDeviceStateHandler(log, store))
			r.Get("/{deviceID}/telemetry", queryTelemetryHandler(log, store))
			r.Get("/{deviceID}/locations", queryLocationsHandler(log, store))
			r.Get("/{deviceID}/journeys", queryJourneysHandler(log, store))
		})

		r.Get("/alerts", queryAlertsHandler(log, store))
		r.Patch("/alerts/{alertID}", acknowledgeAlertHandler(log, store))
	})

	return router, nil
}

func ingestEventHandler(log *slog.Logger, svc ingest.Ingest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if len(body) == 0 {
			writeError(w, http.StatusBadRequest, "Request body required")
			return
		}

		var raw ingest.RawEvent
		err = json.Unmarshal(body, &raw)
		if err != nil {
			requestLogger.Error("unable to unmarshal event", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		deviceID, err := svc.HandleEvent(ctx, raw)
		if err != nil {
			if errors.Is(err, ingest.ErrSerialNumberRequired) {
				requestLogger.Debug("event rejected, no serial number", "notecard_id", raw.Device)
				writeError(w, http.StatusBadRequest, "Serial number (sn) is required. Configure the device serial number before routing events.")
				return
			}

			requestLogger.Error("unable to process event", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		requestLogger.Debug("event processed", "device_id", deviceID, "file", raw.File)

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "device": deviceID})
	}
}

func queryDevicesHandler(log *slog.Logger, store QueryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := conditionsFromQuery(r)
		if status := r.URL.Query().Get("status"); status != "" {
			conditions = append(conditions, storage.WithStatus(status))
		}

		devices, err := store.QueryDeviceStates(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query devices", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, devices)
	}
}

func getDeviceStateHandler(log *slog.Logger, store QueryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		device, err := store.GetDeviceState(ctx, deviceID)
		if errors.Is(err, storage.ErrNoRows) {
			requestLogger.Debug("device not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch device", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, device)
	}
}

func queryTelemetryHandler(log *slog.Logger, store QueryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-telemetry")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := conditionsFromQuery(r)
		conditions = append(conditions, storage.WithDeviceID(chi.URLParam(r, "deviceID")))

		if dataType := r.URL.Query().Get("dataType"); dataType != "" {
			conditions = append(conditions, storage.WithDataType(dataType))
		}

		records, err := store.QueryTelemetry(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query telemetry", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, records)
	}
}

func queryLocationsHandler(log *slog.Logger, store QueryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-locations")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := conditionsFromQuery(r)
		conditions = append(conditions, storage.WithDeviceID(chi.URLParam(r, "deviceID")))

		locations, err := store.QueryLocations(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query locations", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, locations)
	}
}

func queryJourneysHandler(log *slog.Logger, store QueryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-journeys")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := conditionsFromQuery(r)
		conditions = append(conditions, storage.WithDeviceID(chi.URLParam(r, "deviceID")))

		if status := r.URL.Query().Get("status"); status != "" {
			conditions = append(conditions, storage.WithStatus(status))
		}

		journeys, err := store.QueryJourneys(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query journeys", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, journeys)
	}
}

func queryAlertsHandler(log *slog.Logger, store QueryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := conditionsFromQuery(r)

		if deviceID := r.URL.Query().Get("deviceID"); deviceID != "" {
			conditions = append(conditions, storage.WithDeviceID(deviceID))
		}
		if acknowledged := r.URL.Query().Get("acknowledged"); acknowledged != "" {
			conditions = append(conditions, storage.WithAcknowledged(acknowledged))
		}

		alerts, err := store.QueryAlerts(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, alerts)
	}
}

func acknowledgeAlertHandler(log *slog.Logger, store QueryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "acknowledge-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")

		err = store.AcknowledgeAlert(ctx, alertID)
		if errors.Is(err, storage.ErrNoRows) {
			requestLogger.Debug("alert not found", "alert_id", alertID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to acknowledge alert", "alert_id", alertID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func conditionsFromQuery(r *http.Request) []storage.ConditionFunc {
	conditions := []storage.ConditionFunc{}

	q := r.URL.Query()

	if offset := q.Get("offset"); offset != "" {
		if v, err := strconv.Atoi(offset); err == nil {
			conditions = append(conditions, storage.WithOffset(v))
		}
	}
	if limit := q.Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil {
			conditions = append(conditions, storage.WithLimit(v))
		}
	}

	from, _ := strconv.ParseInt(q.Get("from"), 10, 64)
	to, _ := strconv.ParseInt(q.Get("to"), 10, 64)
	if from > 0 || to > 0 {
		conditions = append(conditions, storage.WithTimeRange(from, to))
	}

	return conditions
}

type meta struct {
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalRecords"`
}

func writeCollection[T any](w http.ResponseWriter, collection types.Collection[T]) {
	writeJSON(w, http.StatusOK, struct {
		Meta meta `json:"meta"`
		Data []T  `json:"data"`
	}{
		Meta: meta{
			Count:      collection.Count,
			Offset:     collection.Offset,
			Limit:      collection.Limit,
			TotalCount: collection.TotalCount,
		},
		Data: collection.Data,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
