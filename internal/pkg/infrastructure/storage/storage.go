package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.CreateTables(ctx)
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS telemetry (
			device_id		TEXT	NOT NULL,
			serial_number	TEXT	NULL,
			fleet			TEXT	NULL,
			data_type		TEXT	NOT NULL,
			ts				BIGINT	NOT NULL,
			ttl				BIGINT	NOT NULL,

			temperature		NUMERIC	NULL,
			humidity		NUMERIC	NULL,
			pressure		NUMERIC	NULL,
			motion			BOOLEAN	NULL,
			voltage			NUMERIC	NULL,

			latitude		NUMERIC	NULL,
			longitude		NUMERIC	NULL,
			location_source	TEXT	NULL,

			milliamp_hours	NUMERIC	NULL,

			velocity		NUMERIC	NULL,
			bearing			NUMERIC	NULL,
			distance		NUMERIC	NULL,
			dop				NUMERIC	NULL,
			journey_id		BIGINT	NULL,
			journey_count	BIGINT	NULL,

			health_method	TEXT	NULL,
			health_text		TEXT	NULL,
			voltage_mode	TEXT	NULL,

			mode			TEXT	NULL,
			previous_mode	TEXT	NULL,

			location_event	BOOLEAN	NOT NULL DEFAULT FALSE,

			CONSTRAINT pkey_telemetry PRIMARY KEY (device_id, data_type, ts)
		);

		CREATE TABLE IF NOT EXISTS device_state (
			device_id		TEXT	NOT NULL,
			serial_number	TEXT	NULL,
			fleet			TEXT	NULL,
			status			TEXT	NOT NULL DEFAULT 'online',

			current_mode	TEXT	NULL,
			pending_mode	TEXT	NULL,

			transit_locked		BOOLEAN	NOT NULL DEFAULT FALSE,
			demo_locked			BOOLEAN	NOT NULL DEFAULT FALSE,
			gps_power_saving	BOOLEAN	NOT NULL DEFAULT FALSE,
			gps_no_sat			BOOLEAN	NOT NULL DEFAULT FALSE,

			last_location	JSONB	NULL,
			last_telemetry	JSONB	NULL,
			last_power		JSONB	NULL,
			voltage			NUMERIC	NULL,

			firmware_version	TEXT	NULL,
			notecard_version	TEXT	NULL,
			notecard_sku		TEXT	NULL,
			usb_powered			BOOLEAN	NULL,

			last_seen	BIGINT	NOT NULL DEFAULT 0,
			created_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,

			CONSTRAINT pkey_device_state PRIMARY KEY (device_id)
		);

		CREATE TABLE IF NOT EXISTS journeys (
			device_id		TEXT	NOT NULL,
			journey_id		BIGINT	NOT NULL,
			status			TEXT	NOT NULL DEFAULT 'active',
			start_time		BIGINT	NOT NULL,
			end_time		BIGINT	NOT NULL,
			point_count		BIGINT	NOT NULL DEFAULT 0,
			total_distance	NUMERIC	NOT NULL DEFAULT 0,
			ttl				BIGINT	NOT NULL,
			updated_at		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,

			CONSTRAINT pkey_journeys PRIMARY KEY (device_id, journey_id)
		);

		CREATE TABLE IF NOT EXISTS locations (
			device_id		TEXT	NOT NULL,
			serial_number	TEXT	NULL,
			fleet			TEXT	NULL,
			ts				BIGINT	NOT NULL,
			ttl				BIGINT	NOT NULL,

			latitude		NUMERIC	NOT NULL,
			longitude		NUMERIC	NOT NULL,
			source			TEXT	NOT NULL,
			name			TEXT	NULL,

			journey_id		BIGINT	NULL,
			journey_count	BIGINT	NULL,

			CONSTRAINT pkey_locations PRIMARY KEY (device_id, ts)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id		TEXT	NOT NULL,
			device_id		TEXT	NOT NULL,
			serial_number	TEXT	NULL,
			fleet			TEXT	NULL,

			alert_type		TEXT	NOT NULL,
			message			TEXT	NOT NULL,
			value			NUMERIC	NULL,
			threshold		NUMERIC	NULL,

			created_at		BIGINT	NOT NULL,
			event_timestamp	BIGINT	NOT NULL,
			acknowledged	TEXT	NOT NULL DEFAULT 'false',
			ttl				BIGINT	NOT NULL,

			location		JSONB	NULL,
			metadata		JSONB	NULL,

			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE TABLE IF NOT EXISTS commands (
			device_id	TEXT	NOT NULL,
			command_id	TEXT	NOT NULL,
			command		TEXT	NULL,
			status		TEXT	NOT NULL DEFAULT 'pending',
			message		TEXT	NULL,
			executed_at	BIGINT	NULL,
			created_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,

			CONSTRAINT pkey_commands PRIMARY KEY (device_id, command_id)
		);

		CREATE TABLE IF NOT EXISTS device_aliases (
			serial_number	TEXT	NOT NULL,
			device_id		TEXT	NOT NULL,
			notecard_id		TEXT	NOT NULL,
			created_at		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,

			CONSTRAINT pkey_device_aliases PRIMARY KEY (serial_number)
		);

		CREATE TABLE IF NOT EXISTS activity (
			activity_id	TEXT	NOT NULL,
			device_id	TEXT	NOT NULL,
			activity_type	TEXT	NOT NULL,
			data		JSONB	NULL,
			ts			BIGINT	NOT NULL,

			CONSTRAINT pkey_activity PRIMARY KEY (activity_id)
		);

		CREATE INDEX IF NOT EXISTS journeys_status_idx ON journeys (status, device_id);
		CREATE INDEX IF NOT EXISTS alerts_acknowledged_idx ON alerts (acknowledged, created_at);
		CREATE INDEX IF NOT EXISTS alerts_device_idx ON alerts (device_id, created_at);
		CREATE INDEX IF NOT EXISTS device_state_last_seen_idx ON device_state (last_seen);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
