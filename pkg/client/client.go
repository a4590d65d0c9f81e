package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-telemetry-ingest/client")

var ErrDeviceNotFound = errors.New("device not found")

// TelemetryClient is a thin wrapper around the query API, for services that
// need device state or alerts without talking to the database themselves.
type TelemetryClient interface {
	GetDeviceState(ctx context.Context, deviceID string) (types.DeviceState, error)
	QueryAlerts(ctx context.Context, acknowledged string) ([]types.Alert, error)
}

type telemetryClient struct {
	url        string
	httpClient http.Client
}

func New(url string) TelemetryClient {
	return &telemetryClient{
		url: url,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *telemetryClient) GetDeviceState(ctx context.Context, deviceID string) (types.DeviceState, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-device-state")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var state types.DeviceState

	body, statusCode, err := c.get(ctx, c.url+"/api/v0/devices/"+deviceID)
	if err != nil {
		return state, err
	}

	if statusCode == http.StatusNotFound {
		err = ErrDeviceNotFound
		return state, err
	}
	if statusCode != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", statusCode)
		return state, err
	}

	err = json.Unmarshal(body, &state)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return state, err
	}

	return state, nil
}

func (c *telemetryClient) QueryAlerts(ctx context.Context, acknowledged string) ([]types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := c.url + "/api/v0/alerts"
	if acknowledged != "" {
		url += "?acknowledged=" + acknowledged
	}

	body, statusCode, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	if statusCode != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", statusCode)
		return nil, err
	}

	response := struct {
		Data []types.Alert `json:"data"`
	}{}

	err = json.Unmarshal(body, &response)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return response.Data, nil
}

func (c *telemetryClient) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
