package types

import (
	"time"
)

const (
	DataTypeTelemetry = "telemetry"
	DataTypePower     = "power"
	DataTypeHealth    = "health"
	DataTypeTracking  = "tracking"
)

const (
	LocationSourceGPS           = "gps"
	LocationSourceTriangulation = "triangulation"
	LocationSourceTower         = "tower"
	LocationSourceUnknown       = "unknown"
)

const (
	DeviceStatusOnline  = "online"
	DeviceStatusOffline = "offline"
)

const (
	JourneyStatusActive    = "active"
	JourneyStatusCompleted = "completed"
)

const (
	AlertTypeLowBattery   = "low_battery"
	AlertTypeGpsPowerSave = "gps_power_save"
	AlertTypeGpsNoSat     = "gps_no_sat"
)

// Location is a resolved position snapshot. Time is in seconds since the
// epoch and may be zero when the fix carried no capture time of its own.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Time      int64   `json:"time,omitempty"`
	Source    string  `json:"source"`
	Name      string  `json:"name,omitempty"`
}

// SessionInfo carries the firmware/power details a session event reports.
type SessionInfo struct {
	FirmwareVersion string `json:"firmwareVersion,omitempty"`
	NotecardVersion string `json:"notecardVersion,omitempty"`
	NotecardSku     string `json:"notecardSku,omitempty"`
	UsbPowered      *bool  `json:"usbPowered,omitempty"`
}

// TelemetryRecord is one row in a per-device time series. Timestamp is in
// milliseconds; TTL is an epoch-seconds expiry. Which of the optional fields
// are set depends on DataType.
type TelemetryRecord struct {
	DeviceID     string `json:"deviceID"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Fleet        string `json:"fleet,omitempty"`
	DataType     string `json:"dataType"`
	Timestamp    int64  `json:"timestamp"`
	TTL          int64  `json:"ttl"`

	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	Motion      *bool    `json:"motion,omitempty"`
	Voltage     *float64 `json:"voltage,omitempty"`

	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	LocationSource string   `json:"locationSource,omitempty"`

	MilliampHours *float64 `json:"milliampHours,omitempty"`

	Velocity     *float64 `json:"velocity,omitempty"`
	Bearing      *float64 `json:"bearing,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	DOP          *float64 `json:"dop,omitempty"`
	JourneyID    *int64   `json:"journeyID,omitempty"`
	JourneyCount *int64   `json:"journeyCount,omitempty"`

	HealthMethod string `json:"healthMethod,omitempty"`
	HealthText   string `json:"healthText,omitempty"`
	VoltageMode  string `json:"voltageMode,omitempty"`

	Mode         string `json:"mode,omitempty"`
	PreviousMode string `json:"previousMode,omitempty"`

	LocationEvent bool `json:"locationEvent,omitempty"`
}

// LocationRecord is the unified location trail: one row for any event that
// carried a resolved location, regardless of data type.
type LocationRecord struct {
	DeviceID     string `json:"deviceID"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Fleet        string `json:"fleet,omitempty"`
	Timestamp    int64  `json:"timestamp"`
	TTL          int64  `json:"ttl"`

	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Source    string  `json:"source"`
	Name      string  `json:"name,omitempty"`

	JourneyID    *int64 `json:"journeyID,omitempty"`
	JourneyCount *int64 `json:"journeyCount,omitempty"`
}

// PowerSnapshot mirrors the most recent power-log readings onto the device.
type PowerSnapshot struct {
	Voltage       *float64 `json:"voltage,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	MilliampHours *float64 `json:"milliampHours,omitempty"`
}

// TelemetrySnapshot mirrors the most recent environmental readings.
type TelemetrySnapshot struct {
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	Motion      *bool    `json:"motion,omitempty"`
}

// DeviceState is the current-state row kept per device, upserted on every
// inbound event. LastSeen is in milliseconds.
type DeviceState struct {
	DeviceID     string `json:"deviceID"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Fleet        string `json:"fleet,omitempty"`
	Status       string `json:"status"`

	CurrentMode string `json:"currentMode,omitempty"`
	PendingMode string `json:"pendingMode,omitempty"`

	TransitLocked  bool `json:"transitLocked"`
	DemoLocked     bool `json:"demoLocked"`
	GpsPowerSaving bool `json:"gpsPowerSaving"`
	GpsNoSat       bool `json:"gpsNoSat"`

	LastLocation  *Location          `json:"lastLocation,omitempty"`
	LastTelemetry *TelemetrySnapshot `json:"lastTelemetry,omitempty"`
	LastPower     *PowerSnapshot     `json:"lastPower,omitempty"`
	Voltage       *float64           `json:"voltage,omitempty"`

	FirmwareVersion string `json:"firmwareVersion,omitempty"`
	NotecardVersion string `json:"notecardVersion,omitempty"`
	NotecardSku     string `json:"notecardSku,omitempty"`
	UsbPowered      *bool  `json:"usbPowered,omitempty"`

	LastSeen  int64     `json:"lastSeen"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeviceStatePatch is a partial device-state update. Nil fields are left
// untouched by the upsert, which is what lets the per-event-type field
// routing collapse into a single write.
type DeviceStatePatch struct {
	DeviceID     string
	SerialNumber *string
	Fleet        *string
	Status       *string

	CurrentMode *string

	TransitLocked  *bool
	DemoLocked     *bool
	GpsPowerSaving *bool
	GpsNoSat       *bool

	LastLocation  *Location
	LastTelemetry *TelemetrySnapshot
	LastPower     *PowerSnapshot
	Voltage       *float64

	FirmwareVersion *string
	NotecardVersion *string
	NotecardSku     *string
	UsbPowered      *bool

	LastSeen int64
}

// JourneyRecord aggregates one tracking session. JourneyID is the session's
// start timestamp in seconds, assigned by the device.
type JourneyRecord struct {
	DeviceID  string `json:"deviceID"`
	JourneyID int64  `json:"journeyID"`

	Status        string  `json:"status"`
	StartTime     int64   `json:"startTime"`
	EndTime       int64   `json:"endTime"`
	PointCount    int64   `json:"pointCount"`
	TotalDistance float64 `json:"totalDistance"`

	TTL       int64     `json:"ttl"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JourneyPoint is one upsert against a journey aggregate.
type JourneyPoint struct {
	DeviceID  string
	JourneyID int64

	PointCount int64
	Distance   float64
	Time       int64
	TTL        int64
}

// Alert is a persisted alert row. Acknowledged is a string on purpose: it
// doubles as a partition value for the unacknowledged-alerts index.
type Alert struct {
	ID           string `json:"id"`
	DeviceID     string `json:"deviceID"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Fleet        string `json:"fleet,omitempty"`

	Type      string   `json:"type"`
	Message   string   `json:"message"`
	Value     *float64 `json:"value,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`

	CreatedAt      int64  `json:"createdAt"`
	EventTimestamp int64  `json:"eventTimestamp"`
	Acknowledged   string `json:"acknowledged"`
	TTL            int64  `json:"ttl"`

	Location *Location         `json:"location,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// CommandAck updates a previously-dispatched command row.
type CommandAck struct {
	DeviceID  string `json:"deviceID"`
	CommandID string `json:"commandID"`

	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	ExecutedAt int64  `json:"executedAt,omitempty"`
}

const ActivityNotecardSwap = "notecard_swap"

// Activity is one entry in the device activity feed.
type Activity struct {
	ID       string            `json:"id"`
	DeviceID string            `json:"deviceID"`
	Type     string            `json:"type"`
	Data     map[string]string `json:"data,omitempty"`

	Timestamp int64 `json:"timestamp"`
}

// DeviceAlias maps a serial number to the stable internal device id and the
// raw notecard id currently installed in that unit.
type DeviceAlias struct {
	SerialNumber string    `json:"serialNumber"`
	DeviceID     string    `json:"deviceID"`
	NotecardID   string    `json:"notecardID"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
