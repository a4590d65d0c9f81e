package storage

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	DeviceID     string
	DataType     string
	Acknowledged string
	Status       string

	From int64
	To   int64

	LastSeenBefore time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "ts"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 1000
	}
	return *c.limit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.DataType != "" {
		args["data_type"] = c.DataType
	}
	if c.Acknowledged != "" {
		args["acknowledged"] = c.Acknowledged
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.From > 0 {
		args["from"] = c.From
	}
	if c.To > 0 {
		args["to"] = c.To
	}
	if !c.LastSeenBefore.IsZero() {
		args["last_seen_before"] = c.LastSeenBefore.UnixMilli()
	}

	args["offset"] = c.Offset()
	args["limit"] = c.Limit()

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}
	if c.DataType != "" {
		where = append(where, "data_type = @data_type")
	}
	if c.Acknowledged != "" {
		where = append(where, "acknowledged = @acknowledged")
	}
	if c.Status != "" {
		where = append(where, "status = @status")
	}
	if c.From > 0 {
		where = append(where, "ts >= @from")
	}
	if c.To > 0 {
		where = append(where, "ts <= @to")
	}
	if !c.LastSeenBefore.IsZero() {
		where = append(where, "last_seen < @last_seen_before")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithDataType(dataType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DataType = dataType
		return c
	}
}

func WithAcknowledged(acknowledged string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Acknowledged = acknowledged
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithTimeRange(from, to int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.From = from
		c.To = to
		return c
	}
}

func WithLastSeenBefore(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.LastSeenBefore = t
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "ts", "timestamp":
			c.sortBy = "ts"
		case "created_at":
			c.sortBy = "created_at"
		case "journey_id":
			c.sortBy = "journey_id"
		case "last_seen":
			c.sortBy = "last_seen"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}
