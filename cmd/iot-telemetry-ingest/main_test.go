package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseExternalConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(context.Background(), readCloser(`
ingest:
  retentionDays: 30
  lowBatteryThreshold: 3.3
watchdog:
  offlineAfterMinutes: 15
`))

	is.NoErr(err)
	is.Equal(30, cfg.Ingest.RetentionDays)
	is.Equal(3.3, cfg.Ingest.LowBatteryThreshold)
	is.Equal(15, cfg.Watchdog.OfflineAfterMinutes)
}

func TestParseExternalConfigFileDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(context.Background(), readCloser(`{}`))

	is.NoErr(err)
	is.Equal(30, cfg.Watchdog.OfflineAfterMinutes)
}

func readCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
