package main

import (
	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
	"github.com/songbird-live/iot-telemetry-ingest/internal/pkg/application/ingest"
)

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	controlPort
	enableTracing

	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

type watchdogConfig struct {
	OfflineAfterMinutes int `yaml:"offlineAfterMinutes"`
}

type appConfig struct {
	Ingest   ingest.Config  `yaml:"ingest"`
	Watchdog watchdogConfig `yaml:"watchdog"`
}

var webserver = servicerunner.WithHTTPServeMux[appConfig]
var listen = servicerunner.WithListenAddr[appConfig]
var port = servicerunner.WithPort[appConfig]
var pprof = servicerunner.WithPPROF[appConfig]
var liveness = servicerunner.WithK8SLivenessProbe[appConfig]
var readiness = servicerunner.WithK8SReadinessProbes[appConfig]
var tracing = servicerunner.WithTracing[appConfig]
var muxinit = servicerunner.OnMuxInit[appConfig]
var oninit = servicerunner.OnInit[appConfig]
var onstarting = servicerunner.OnStarting[appConfig]
var onshutdown = servicerunner.OnShutdown[appConfig]
