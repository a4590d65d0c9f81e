package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/songbird-live/iot-telemetry-ingest/pkg/types"
)

// Event-type tags as they arrive in the routed note's file field.
const (
	FileTracking    = "track.qo"
	FileGpsTracking = "_track.qo"
	FileHealth      = "health.qo"
	FilePowerLog    = "_log.qo"
	FileGeolocate   = "_geolocate.qo"
	FileSession     = "_session.qo"
	FileAlert       = "alert.qo"
	FileCommandAck  = "command_ack.qo"
)

const ModeTransit = "transit"

var ErrSerialNumberRequired = fmt.Errorf("serial number (sn) is required")

// RawEvent is the loosely-typed payload relayed by the connectivity platform.
// Coordinates and times are pointers because zero is a valid value and must
// not read as absent.
type RawEvent struct {
	Device       string `json:"device,omitempty"`
	SerialNumber string `json:"sn,omitempty"`
	Fleet        string `json:"fleet,omitempty"`
	File         string `json:"file,omitempty"`

	When     *int64   `json:"when,omitempty"`
	Received *float64 `json:"received,omitempty"`

	BestLat          *float64 `json:"best_lat,omitempty"`
	BestLon          *float64 `json:"best_lon,omitempty"`
	BestLocationType *string  `json:"best_location_type,omitempty"`
	BestLocation     string   `json:"best_location,omitempty"`
	WhereWhen        *int64   `json:"where_when,omitempty"`

	TriLat      *float64 `json:"tri_lat,omitempty"`
	TriLon      *float64 `json:"tri_lon,omitempty"`
	TriLocation string   `json:"tri_location,omitempty"`
	TriWhen     *int64   `json:"tri_when,omitempty"`

	TowerLat      *float64 `json:"tower_lat,omitempty"`
	TowerLon      *float64 `json:"tower_lon,omitempty"`
	TowerLocation string   `json:"tower_location,omitempty"`
	TowerWhen     *int64   `json:"tower_when,omitempty"`

	FirmwareHost     string `json:"firmware_host,omitempty"`
	FirmwareNotecard string `json:"firmware_notecard,omitempty"`
	Sku              string `json:"sku,omitempty"`
	Usb              *bool  `json:"usb,omitempty"`
	Status           string `json:"status,omitempty"`

	Body map[string]any `json:"body,omitempty"`
}

// canonicalEvent is the normalized shape one pipeline run operates on.
// Timestamp and ReceivedAt are in seconds; conversion to milliseconds happens
// at each persistence boundary, never here.
type canonicalEvent struct {
	DeviceID     string
	SerialNumber string
	Fleet        string
	EventType    string
	Timestamp    int64
	ReceivedAt   int64

	Body map[string]any

	Location *types.Location
	Session  *types.SessionInfo
	Status   string
}

//go:generate moq -rm -out store_mock.go . Store
type Store interface {
	AddTelemetry(ctx context.Context, rec types.TelemetryRecord) error
	AddLocation(ctx context.Context, rec types.LocationRecord) error

	GetDeviceState(ctx context.Context, deviceID string) (types.DeviceState, error)
	PatchDeviceState(ctx context.Context, patch types.DeviceStatePatch) error
	ClearPendingMode(ctx context.Context, deviceID, mode string) error

	UpsertJourneyPoint(ctx context.Context, point types.JourneyPoint) error
	CloseLatestActiveJourneyBefore(ctx context.Context, deviceID string, journeyID int64) error
	CloseActiveJourneys(ctx context.Context, deviceID string) error

	AddAlert(ctx context.Context, alert types.Alert) error
	UpdateCommandAck(ctx context.Context, ack types.CommandAck) error
	AddActivity(ctx context.Context, activity types.Activity) error
}

// Resolution is the outcome of mapping (serial number, raw notecard id) to
// the stable internal device id.
type Resolution struct {
	DeviceID    string
	IsSwap      bool
	OldDeviceID string
}

//go:generate moq -rm -out aliasresolver_mock.go . AliasResolver
type AliasResolver interface {
	Resolve(ctx context.Context, serialNumber, notecardID string) (Resolution, error)
}

//go:generate moq -rm -out ingest_mock.go . Ingest
type Ingest interface {
	HandleEvent(ctx context.Context, raw RawEvent) (string, error)
}

type Config struct {
	RetentionDays       int     `yaml:"retentionDays"`
	LowBatteryThreshold float64 `yaml:"lowBatteryThreshold"`
}

func (c Config) retentionSeconds() int64 {
	return int64(c.RetentionDays) * 24 * 3600
}

type service struct {
	store     Store
	aliases   AliasResolver
	messenger messaging.MsgContext
	config    Config

	now         func() time.Time
	alertSuffix func() string
}

func New(store Store, aliases AliasResolver, messenger messaging.MsgContext, config Config) Ingest {
	if config.RetentionDays == 0 {
		config.RetentionDays = 90
	}
	if config.LowBatteryThreshold == 0 {
		config.LowBatteryThreshold = 3.0
	}

	return &service{
		store:     store,
		aliases:   aliases,
		messenger: messenger,
		config:    config,

		now:         func() time.Time { return time.Now().UTC() },
		alertSuffix: func() string { return uuid.NewString()[:8] },
	}
}

func (s *service) HandleEvent(ctx context.Context, raw RawEvent) (string, error) {
	if strings.TrimSpace(raw.SerialNumber) == "" {
		return "", ErrSerialNumberRequired
	}

	res, err := s.aliases.Resolve(ctx, raw.SerialNumber, raw.Device)
	if err != nil {
		return "", fmt.Errorf("could not resolve device alias: %w", err)
	}

	if res.IsSwap {
		s.recordNotecardSwap(ctx, raw, res)
	}

	ev := s.normalize(ctx, raw, res.DeviceID)

	err = s.fanOut(ctx, ev)
	if err != nil {
		return "", err
	}

	return res.DeviceID, nil
}

func (s *service) normalize(ctx context.Context, raw RawEvent, deviceID string) canonicalEvent {
	fleet := raw.Fleet
	if fleet == "" {
		fleet = "default"
	}

	ts := resolveTimestamp(raw)
	if ts == 0 {
		ts = s.now().Unix()
	}

	var receivedAt int64
	if raw.Received != nil {
		receivedAt = int64(*raw.Received)
	}

	return canonicalEvent{
		DeviceID:     deviceID,
		SerialNumber: raw.SerialNumber,
		Fleet:        fleet,
		EventType:    raw.File,
		Timestamp:    ts,
		ReceivedAt:   receivedAt,
		Body:         raw.Body,
		Location:     resolveLocation(raw),
		Session:      resolveSessionInfo(ctx, raw),
		Status:       resolveGpsStatus(raw),
	}
}

// recordNotecardSwap appends an activity-feed entry and publishes a message
// when a hardware replacement is detected. Informational only: failures are
// logged and never block the pipeline.
func (s *service) recordNotecardSwap(ctx context.Context, raw RawEvent, res Resolution) {
	log := logging.GetFromContext(ctx)

	ts := s.now().UnixMilli()

	err := s.store.AddActivity(ctx, types.Activity{
		ID:       uuid.NewString(),
		DeviceID: res.DeviceID,
		Type:     types.ActivityNotecardSwap,
		Data: map[string]string{
			"serialNumber":  raw.SerialNumber,
			"oldNotecardID": res.OldDeviceID,
			"newNotecardID": raw.Device,
		},
		Timestamp: ts,
	})
	if err != nil {
		log.Error("could not record notecard swap", "device_id", res.DeviceID, "err", err.Error())
	}

	err = s.messenger.PublishOnTopic(ctx, &types.NotecardSwapped{
		DeviceID:      res.DeviceID,
		SerialNumber:  raw.SerialNumber,
		OldNotecardID: res.OldDeviceID,
		NewNotecardID: raw.Device,
		Timestamp:     ts,
	})
	if err != nil {
		log.Error("could not publish notecard swap", "device_id", res.DeviceID, "err", err.Error())
	}
}
