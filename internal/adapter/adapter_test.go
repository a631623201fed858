package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LIZZY274/hotspot-panel/internal/deviceapi"
	"github.com/LIZZY274/hotspot-panel/internal/models"
)

type fakeClient struct {
	stats    *deviceapi.StatsPayload
	config   *deviceapi.ConfigPayload
	users    []string
	metrics  *deviceapi.MetricsPayload
	logs     []deviceapi.LogPayload
	analysis *deviceapi.AnalysisPayload
	err      error

	updated any
}

func (f *fakeClient) Health(ctx context.Context) error { return f.err }

func (f *fakeClient) HotspotStats(ctx context.Context) (*deviceapi.StatsPayload, error) {
	return f.stats, f.err
}

func (f *fakeClient) HotspotConfig(ctx context.Context) (*deviceapi.ConfigPayload, error) {
	return f.config, f.err
}

func (f *fakeClient) UpdateHotspotConfig(ctx context.Context, cfg any) error {
	f.updated = cfg
	return f.err
}

func (f *fakeClient) ActiveUsers(ctx context.Context) ([]string, error) {
	return f.users, f.err
}

func (f *fakeClient) Metrics(ctx context.Context) (*deviceapi.MetricsPayload, error) {
	return f.metrics, f.err
}

func (f *fakeClient) Logs(ctx context.Context, limit int) ([]deviceapi.LogPayload, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.logs) {
		return f.logs[:limit], nil
	}
	return f.logs, nil
}

func (f *fakeClient) Analyze(ctx context.Context, code string) (*deviceapi.AnalysisPayload, error) {
	return f.analysis, f.err
}

func TestSystemStatsLive(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	a := New(&fakeClient{stats: &deviceapi.StatsPayload{ActiveUsers: 7, Timestamp: ts}}, nil)

	stats, stale := a.SystemStats(context.Background())

	require.False(t, stale)
	require.Equal(t, 7, stats.ActiveUsers)
	require.Equal(t, "Active", stats.HotspotStatus)
	require.Len(t, stats.RecentActivity, 3)
	require.Equal(t, "7 users connected", stats.RecentActivity[0].Description)
	require.Equal(t, ts, stats.RecentActivity[0].Timestamp)
	require.GreaterOrEqual(t, stats.TotalTraffic, 100)
	require.Less(t, stats.TotalTraffic, 600)
}

func TestSystemStatsInactiveWhenEmpty(t *testing.T) {
	a := New(&fakeClient{stats: &deviceapi.StatsPayload{ActiveUsers: 0}}, nil)

	stats, stale := a.SystemStats(context.Background())

	require.False(t, stale)
	require.Equal(t, "Inactive", stats.HotspotStatus)
}

func TestSystemStatsFallback(t *testing.T) {
	a := New(&fakeClient{err: deviceapi.ErrTransport}, nil)

	stats, stale := a.SystemStats(context.Background())

	require.True(t, stale)
	require.GreaterOrEqual(t, stats.ActiveUsers, 5)
	require.Less(t, stats.ActiveUsers, 30)
	require.GreaterOrEqual(t, stats.TotalTraffic, 100)
	require.Less(t, stats.TotalTraffic, 600)
	require.Equal(t, "Active", stats.HotspotStatus)
	require.Len(t, stats.RecentActivity, 3)
}

func TestHotspotConfigLive(t *testing.T) {
	a := New(&fakeClient{config: &deviceapi.ConfigPayload{
		HotSpots: []string{"name=hs-wlan1 interface=wlan1"},
		Users:    []string{"name=admin profile=default"},
	}}, nil)

	cfg, stale := a.HotspotConfig(context.Background())

	require.False(t, stale)
	require.True(t, cfg.Enabled)
	require.Equal(t, "wlan1", cfg.Interface)
	require.Len(t, cfg.Hotspots, 1)
	require.Len(t, cfg.Users, 1)
}

func TestHotspotConfigFallback(t *testing.T) {
	a := New(&fakeClient{err: deviceapi.ErrTimeout}, nil)

	cfg, stale := a.HotspotConfig(context.Background())

	require.True(t, stale)
	require.Equal(t, "wlan1", cfg.Interface)
	require.Equal(t, 50, cfg.MaxUsers)
	require.Empty(t, cfg.Hotspots)
}

func TestUpdateHotspotConfigSurfacesError(t *testing.T) {
	fc := &fakeClient{err: deviceapi.ErrTransport}
	a := New(fc, nil)

	err := a.UpdateHotspotConfig(context.Background(), models.HotspotConfig{Interface: "wlan2"})

	require.ErrorIs(t, err, deviceapi.ErrTransport)
}

func TestActiveUsersParsing(t *testing.T) {
	a := New(&fakeClient{users: []string{
		"user=alice address=10.0.0.5 mac-address=AA:BB:CC:DD:EE:FF uptime=1:05 session-time=1h 5m",
		"address=10.0.0.6",
	}}, nil)

	users, stale := a.ActiveUsers(context.Background())

	require.False(t, stale)
	require.Len(t, users, 2)

	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, "10.0.0.5", users[0].IP)
	require.Equal(t, "AA:BB:CC:DD:EE:FF", users[0].MAC)
	require.Equal(t, "1:05", users[0].Connected)

	// Absent parameters get per-field synthetic values.
	require.Equal(t, "user2", users[1].Username)
	require.Equal(t, "10.0.0.6", users[1].IP)
	require.Equal(t, "00:11:22:33:44:51", users[1].MAC)
	require.NotEmpty(t, users[1].Traffic)
}

func TestActiveUsersFallback(t *testing.T) {
	a := New(&fakeClient{err: deviceapi.ErrTransport}, nil)

	users, stale := a.ActiveUsers(context.Background())

	require.True(t, stale)
	require.Len(t, users, 3)
	require.Equal(t, "usuario1", users[0].Username)
}

func TestMetricsFallbackRanges(t *testing.T) {
	a := New(&fakeClient{err: deviceapi.ErrTimeout}, nil)

	m, stale := a.Metrics(context.Background())

	require.True(t, stale)
	require.GreaterOrEqual(t, m.CPU, 10)
	require.Less(t, m.CPU, 90)
	require.GreaterOrEqual(t, m.Memory, 20)
	require.Less(t, m.Memory, 90)
	require.GreaterOrEqual(t, m.Disk, 30)
	require.Less(t, m.Disk, 90)
	require.GreaterOrEqual(t, m.Network.RX, 100)
	require.Less(t, m.Network.RX, 1100)
	require.GreaterOrEqual(t, m.Network.TX, 80)
	require.Less(t, m.Network.TX, 880)
	require.GreaterOrEqual(t, m.Temperature, 35)
	require.Less(t, m.Temperature, 55)
	require.GreaterOrEqual(t, m.LoadAverage, 0.0)
	require.Less(t, m.LoadAverage, 3.0)
	require.Equal(t, "2d 14h 32m", m.Uptime)
}

func TestMetricsLive(t *testing.T) {
	payload := &deviceapi.MetricsPayload{CPU: 42, Memory: 61, Disk: 33, Uptime: "1d 2h", Temperature: 40}
	payload.Network.RX = 512
	payload.Network.TX = 256
	a := New(&fakeClient{metrics: payload}, nil)

	m, stale := a.Metrics(context.Background())

	require.False(t, stale)
	require.Equal(t, 42, m.CPU)
	require.Equal(t, models.NetworkIO{RX: 512, TX: 256}, m.Network)
}

func TestLogsFallbackLimit(t *testing.T) {
	a := New(&fakeClient{err: deviceapi.ErrTransport}, nil)

	logs, stale := a.Logs(context.Background(), 5)

	require.True(t, stale)
	require.Len(t, logs, 5)
	for i, l := range logs {
		require.Equal(t, i+1, l.ID)
		require.NotEmpty(t, l.Level)
		require.NotEmpty(t, l.Message)
	}
	// Entries walk backwards in time, newest first.
	require.True(t, logs[0].Timestamp.After(logs[4].Timestamp))
}

func TestAnalysisReportPassed(t *testing.T) {
	a := New(&fakeClient{analysis: &deviceapi.AnalysisPayload{
		ParseValid:   true,
		SemValid:     true,
		HotspotStats: deviceapi.HotspotStatsCounts{Hotspots: 1, Users: 2, Bindings: 1},
	}}, nil)

	report, stale := a.Analysis(context.Background(), "")

	require.False(t, stale)
	require.Equal(t, models.CheckPassed, report.Status)
	require.Equal(t, 6, report.TotalChecks)
	require.Equal(t, 6, report.Passed)
	require.Zero(t, report.Warnings)
	require.Zero(t, report.Errors)
	require.Equal(t, "1 hotspots, 2 users, 1 bindings", report.Checks[4].Details)
}

func TestAnalysisReportSecurityWarning(t *testing.T) {
	a := New(&fakeClient{analysis: &deviceapi.AnalysisPayload{
		ParseValid:       true,
		SemValid:         false,
		SecurityWarnings: []string{"weak password for user admin"},
	}}, nil)

	report, stale := a.Analysis(context.Background(), "")

	require.False(t, stale)
	// Warnings degrade the overall status even alongside a hard failure.
	require.Equal(t, models.CheckWarning, report.Status)
	require.Equal(t, models.CheckError, report.Checks[2].Status)
	require.Equal(t, models.CheckWarning, report.Checks[3].Status)
	require.Equal(t, "weak password for user admin", report.Checks[3].Details)
}

func TestAnalysisReportWarningOnly(t *testing.T) {
	a := New(&fakeClient{analysis: &deviceapi.AnalysisPayload{
		ParseValid:       false,
		SemValid:         true,
		SecurityWarnings: []string{"open access binding"},
	}}, nil)

	report, _ := a.Analysis(context.Background(), "")

	require.Equal(t, models.CheckWarning, report.Status)
}

func TestAnalysisFallback(t *testing.T) {
	a := New(&fakeClient{err: deviceapi.ErrTimeout}, nil)

	report, stale := a.Analysis(context.Background(), "ignored")

	require.True(t, stale)
	require.Equal(t, models.CheckWarning, report.Status)
	require.Equal(t, 6, report.TotalChecks)
	require.Equal(t, 4, report.Passed)
	require.Equal(t, 2, report.Warnings)
	require.Zero(t, report.Errors)
	require.Contains(t, report.Checks[5].Details, "synthetic")
}
