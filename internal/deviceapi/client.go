// Package deviceapi is the HTTP client for the remote device backend:
// health, hotspot stats/config, active users, system metrics, logs, and
// configuration analysis. It maps transport failures onto a small set of
// sentinel errors; it performs no retries and no fallback — graceful
// degradation is the adapter's job.
package deviceapi

import (
	"context"
	"encoding/json"
	"time"
)

// StatsPayload is the raw summary returned by GET /api/hotspot/stats.
type StatsPayload struct {
	ActiveUsers int       `json:"usuarios_activos"`
	Timestamp   time.Time `json:"timestamp"`
}

// ConfigPayload is the raw configuration returned by GET /api/hotspot/config.
type ConfigPayload struct {
	HotSpots []string `json:"HotSpots"`
	Users    []string `json:"Users"`
	Profiles []string `json:"Profiles"`
}

// MetricsPayload is the raw response of GET /api/monitoring/metrics.
type MetricsPayload struct {
	CPU     int `json:"cpu"`
	Memory  int `json:"memory"`
	Disk    int `json:"disk"`
	Network struct {
		RX int `json:"rx"`
		TX int `json:"tx"`
	} `json:"network"`
	Uptime      string  `json:"uptime"`
	Temperature int     `json:"temperature"`
	LoadAverage float64 `json:"loadAverage,omitempty"`
}

// LogPayload is one raw log line from GET /api/logs.
type LogPayload struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// HotspotStatsCounts summarizes what the analyzer found in a config.
type HotspotStatsCounts struct {
	Hotspots int `json:"hotspots"`
	Users    int `json:"users"`
	Bindings int `json:"bindings"`
}

// AnalysisPayload is the raw response of POST /api/hotspot/analyze.
type AnalysisPayload struct {
	ParseValid       bool               `json:"parseValid"`
	SemValid         bool               `json:"semValid"`
	ParseErrors      []string           `json:"parseErrors"`
	SemErrors        []string           `json:"semErrors"`
	SecurityWarnings []string           `json:"securityWarnings"`
	HotspotStats     HotspotStatsCounts `json:"hotspotStats"`
	Tokens           []json.RawMessage  `json:"tokens"`
}

// Client is the surface of the remote device API consumed by the panel.
type Client interface {
	Health(ctx context.Context) error
	HotspotStats(ctx context.Context) (*StatsPayload, error)
	HotspotConfig(ctx context.Context) (*ConfigPayload, error)
	UpdateHotspotConfig(ctx context.Context, cfg any) error
	ActiveUsers(ctx context.Context) ([]string, error)
	Metrics(ctx context.Context) (*MetricsPayload, error)
	Logs(ctx context.Context, limit int) ([]LogPayload, error)
	Analyze(ctx context.Context, code string) (*AnalysisPayload, error)
}
