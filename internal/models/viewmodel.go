package models

import "time"

// SystemStats is the adapted summary shown on the dashboard home and
// stats sections.
type SystemStats struct {
	ActiveUsers    int            `json:"activeUsers"`
	TotalTraffic   int            `json:"totalTraffic"`
	HotspotStatus  string         `json:"hotspotStatus"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}

// ActivityItem is one line of the recent-activity feed.
type ActivityItem struct {
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// HotspotConfig is the adapted captive-portal configuration view-model.
// The static defaults mirror what the managed device reports for a stock
// wlan1 deployment.
type HotspotConfig struct {
	Interface      string   `json:"interface"`
	Enabled        bool     `json:"enabled"`
	Authentication string   `json:"authentication"`
	Encryption     string   `json:"encryption"`
	Timeout        string   `json:"timeout"`
	AddressPool    string   `json:"addressPool"`
	DNSServers     string   `json:"dnsServers"`
	MaxUsers       int      `json:"maxUsers"`
	Hotspots       []string `json:"hotspots,omitempty"`
	Users          []string `json:"users,omitempty"`
	Profiles       []string `json:"profiles,omitempty"`
}

// ActiveUser is one live captive-portal session.
type ActiveUser struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	IP          string `json:"ip"`
	MAC         string `json:"mac"`
	Connected   string `json:"connected"`
	Traffic     string `json:"traffic"`
	SessionTime string `json:"sessionTime"`
}

// NetworkIO holds receive/transmit rates in kbit/s.
type NetworkIO struct {
	RX int `json:"rx"`
	TX int `json:"tx"`
}

// Metrics is the adapted system metrics view-model for the monitoring
// section.
type Metrics struct {
	CPU         int       `json:"cpu"`
	Memory      int       `json:"memory"`
	Disk        int       `json:"disk"`
	Network     NetworkIO `json:"network"`
	Uptime      string    `json:"uptime"`
	Temperature int       `json:"temperature"`
	LoadAverage float64   `json:"loadAverage"`
}

// LogEntry is one adapted device log line.
type LogEntry struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// CheckStatus is the outcome of a single analysis check, and of the
// report as a whole.
type CheckStatus string

const (
	CheckPassed  CheckStatus = "passed"
	CheckWarning CheckStatus = "warning"
	CheckError   CheckStatus = "error"
)

// AnalysisCheck is one row of the six-check configuration report.
type AnalysisCheck struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Status      CheckStatus `json:"status"`
	Description string      `json:"description"`
	Details     string      `json:"details"`
}

// AnalysisReport is the normalized result of a remote configuration
// analysis run.
type AnalysisReport struct {
	Status       CheckStatus     `json:"status"`
	TotalChecks  int             `json:"totalChecks"`
	Passed       int             `json:"passed"`
	Warnings     int             `json:"warnings"`
	Errors       int             `json:"errors"`
	LastAnalysis time.Time       `json:"lastAnalysis"`
	Checks       []AnalysisCheck `json:"checks"`
}

// SyncResult holds the last adapted payload for one view. Stale is set
// when the producing fetch failed and synthetic (or previous) data is in
// use instead of live data.
type SyncResult struct {
	View        View            `json:"view"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Stale       bool            `json:"stale"`
	Stats       *SystemStats    `json:"stats,omitempty"`
	Config      *HotspotConfig  `json:"config,omitempty"`
	Metrics     *Metrics        `json:"metrics,omitempty"`
	ActiveUsers []ActiveUser    `json:"activeUsers,omitempty"`
	Logs        []LogEntry      `json:"logs,omitempty"`
	Report      *AnalysisReport `json:"report,omitempty"`
}
