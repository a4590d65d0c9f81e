package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/application/ingest"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/router"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/infrastructure/storage"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

func TestIngestRejectsEmptyBody(t *testing.T) {
	is := is.New(t)
	mux := testSetup(t, &ingest.IngestMock{}, &QueryStoreMock{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/events", http.NoBody))

	is.Equal(http.StatusBadRequest, w.Code)
	is.Equal(`{"error":"Request body required"}`, w.Body.String())
}

func TestIngestRejectsMalformedJSON(t *testing.T) {
	is := is.New(t)
	mux := testSetup(t, &ingest.IngestMock{}, &QueryStoreMock{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/events", bytes.NewBufferString("{not json")))

	is.Equal(http.StatusInternalServerError, w.Code)
	is.Equal(`{"error":"Internal server error"}`, w.Body.String())
}

func TestIngestRejectsMissingSerialNumber(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestMock{
		HandleEventFunc: func(ctx context.Context, raw ingest.RawEvent) (string, error) {
			return "", ingest.ErrSerialNumberRequired
		},
	}
	mux := testSetup(t, svc, &QueryStoreMock{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/events", bytes.NewBufferString(`{"device":"dev:1","file":"track.qo"}`)))

	is.Equal(http.StatusBadRequest, w.Code)

	var response map[string]string
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.Equal("Serial number (sn) is required. Configure the device serial number before routing events.", response["error"])
}

func TestIngestReturnsResolvedDeviceID(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestMock{
		HandleEventFunc: func(ctx context.Context, raw ingest.RawEvent) (string, error) {
			return "dev:1", nil
		},
	}
	mux := testSetup(t, svc, &QueryStoreMock{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/events", bytes.NewBufferString(`{"device":"dev:1","sn":"SN1","file":"track.qo"}`)))

	is.Equal(http.StatusOK, w.Code)
	is.Equal(`{"device":"dev:1","status":"ok"}`, w.Body.String())
	is.Equal(1, len(svc.HandleEventCalls()))
	is.Equal("SN1", svc.HandleEventCalls()[0].Raw.SerialNumber)
}

func TestIngestFailureReturns500(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestMock{
		HandleEventFunc: func(ctx context.Context, raw ingest.RawEvent) (string, error) {
			return "", errors.New("write throttled")
		},
	}
	mux := testSetup(t, svc, &QueryStoreMock{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/events", bytes.NewBufferString(`{"device":"dev:1","sn":"SN1"}`)))

	is.Equal(http.StatusInternalServerError, w.Code)
	is.Equal(`{"error":"Internal server error"}`, w.Body.String())
}

func TestGetUnknownDeviceReturns404(t *testing.T) {
	is := is.New(t)

	store := &QueryStoreMock{
		GetDeviceStateFunc: func(ctx context.Context, deviceID string) (types.DeviceState, error) {
			return types.DeviceState{}, storage.ErrNoRows
		},
	}
	mux := testSetup(t, &ingest.IngestMock{}, store)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/devices/dev:1", nil))

	is.Equal(http.StatusNotFound, w.Code)
}

func TestQueryTelemetryPassesConditions(t *testing.T) {
	is := is.New(t)

	store := &QueryStoreMock{
		QueryTelemetryFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.TelemetryRecord], error) {
			return types.Collection[types.TelemetryRecord]{
				Data:       []types.TelemetryRecord{{DeviceID: "dev:1", DataType: types.DataTypeTracking}},
				Count:      1,
				TotalCount: 14,
				Limit:      1,
			}, nil
		},
	}
	mux := testSetup(t, &ingest.IngestMock{}, store)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/devices/dev:1/telemetry?dataType=tracking&limit=1", nil))

	is.Equal(http.StatusOK, w.Code)
	is.Equal(1, len(store.QueryTelemetryCalls()))
	// deviceID from the path, dataType and limit from the query string
	is.Equal(3, len(store.QueryTelemetryCalls()[0].Conditions))

	var response struct {
		Meta struct {
			TotalRecords uint64 `json:"totalRecords"`
		} `json:"meta"`
		Data []types.TelemetryRecord `json:"data"`
	}
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.Equal(uint64(14), response.Meta.TotalRecords)
	is.Equal(1, len(response.Data))
}

func TestAcknowledgeAlert(t *testing.T) {
	is := is.New(t)

	store := &QueryStoreMock{
		AcknowledgeAlertFunc: func(ctx context.Context, alertID string) error { return nil },
	}
	mux := testSetup(t, &ingest.IngestMock{}, store)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/alert_dev:1_1700000000000_a1b2c3d4", nil))

	is.Equal(http.StatusNoContent, w.Code)
	is.Equal("alert_dev:1_1700000000000_a1b2c3d4", store.AcknowledgeAlertCalls()[0].AlertID)
}

func TestAcknowledgeUnknownAlertReturns404(t *testing.T) {
	is := is.New(t)

	store := &QueryStoreMock{
		AcknowledgeAlertFunc: func(ctx context.Context, alertID string) error { return storage.ErrNoRows },
	}
	mux := testSetup(t, &ingest.IngestMock{}, store)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/nosuchalert", nil))

	is.Equal(http.StatusNotFound, w.Code)
}

func TestAcknowledgePreflightAllowsPatch(t *testing.T) {
	is := is.New(t)
	mux := testSetup(t, &ingest.IngestMock{}, &QueryStoreMock{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/alerts/alert_dev:1_1700000000000_a1b2c3d4", nil)
	req.Header.Set("Origin", "https://dashboard.songbird.live")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	is.Equal(http.MethodPatch, w.Header().Get("Access-Control-Allow-Methods"))
}

func TestHealthEndpoint(t *testing.T) {
	is := is.New(t)
	mux := testSetup(t, &ingest.IngestMock{}, &QueryStoreMock{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	is.Equal(http.StatusNoContent, w.Code)
}

func testSetup(t *testing.T, svc ingest.Ingest, store QueryStore) http.Handler {
	t.Helper()

	mux, err := RegisterHandlers(context.Background(), router.New("testing"), svc, store)
	if err != nil {
		t.Fatal(err)
	}

	return mux
}
