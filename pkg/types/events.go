package types

import "encoding/json"

// AlertCreated is published once per persisted alert so downstream consumers
// (mailers, webhooks) can subscribe without touching the alert table.
type AlertCreated struct {
	AlertID      string   `json:"alertID"`
	DeviceID     string   `json:"deviceID"`
	SerialNumber string   `json:"serialNumber,omitempty"`
	Fleet        string   `json:"fleet,omitempty"`

	AlertType string    `json:"alertType"`
	Message   string    `json:"message"`
	Value     *float64  `json:"value,omitempty"`
	Timestamp int64     `json:"timestamp"`
	Location  *Location `json:"location,omitempty"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

// NotecardSwapped is published when alias resolution detects that a device's
// notecard has been replaced.
type NotecardSwapped struct {
	DeviceID      string `json:"deviceID"`
	SerialNumber  string `json:"serialNumber"`
	OldNotecardID string `json:"oldNotecardID"`
	NewNotecardID string `json:"newNotecardID"`
	Timestamp     int64  `json:"timestamp"`
}

func (n *NotecardSwapped) ContentType() string {
	return "application/json"
}
func (n *NotecardSwapped) TopicName() string {
	return "device.notecardSwapped"
}
func (n *NotecardSwapped) Body() []byte {
	b, _ := json.Marshal(n)
	return b
}
