package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LIZZY274/hotspot-panel/internal/adapter"
	"github.com/LIZZY274/hotspot-panel/internal/connectivity"
	"github.com/LIZZY274/hotspot-panel/internal/deviceapi"
	"github.com/LIZZY274/hotspot-panel/internal/models"
)

// countingClient is a device backend fake that counts calls per
// endpoint and fails the endpoints listed in fail.
type countingClient struct {
	mu   sync.Mutex
	fail map[string]bool

	health, stats, metrics, users, logs, analyze atomic.Int32
}

func (c *countingClient) failing(endpoint string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail[endpoint] {
		return deviceapi.ErrTransport
	}
	return nil
}

func (c *countingClient) setFail(endpoint string, v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail == nil {
		c.fail = map[string]bool{}
	}
	c.fail[endpoint] = v
}

func (c *countingClient) Health(ctx context.Context) error {
	c.health.Add(1)
	return c.failing("health")
}

func (c *countingClient) HotspotStats(ctx context.Context) (*deviceapi.StatsPayload, error) {
	c.stats.Add(1)
	if err := c.failing("stats"); err != nil {
		return nil, err
	}
	return &deviceapi.StatsPayload{ActiveUsers: 4, Timestamp: time.Now()}, nil
}

func (c *countingClient) HotspotConfig(ctx context.Context) (*deviceapi.ConfigPayload, error) {
	return &deviceapi.ConfigPayload{}, nil
}

func (c *countingClient) UpdateHotspotConfig(ctx context.Context, cfg any) error { return nil }

func (c *countingClient) ActiveUsers(ctx context.Context) ([]string, error) {
	c.users.Add(1)
	if err := c.failing("users"); err != nil {
		return nil, err
	}
	return []string{"user=alice address=10.0.0.5"}, nil
}

func (c *countingClient) Metrics(ctx context.Context) (*deviceapi.MetricsPayload, error) {
	c.metrics.Add(1)
	if err := c.failing("metrics"); err != nil {
		return nil, err
	}
	return &deviceapi.MetricsPayload{CPU: 42, Memory: 50, Disk: 60, Uptime: "1d"}, nil
}

func (c *countingClient) Logs(ctx context.Context, limit int) ([]deviceapi.LogPayload, error) {
	c.logs.Add(1)
	if err := c.failing("logs"); err != nil {
		return nil, err
	}
	return []deviceapi.LogPayload{{ID: 1, Level: "info", Message: "ok"}}, nil
}

func (c *countingClient) Analyze(ctx context.Context, code string) (*deviceapi.AnalysisPayload, error) {
	c.analyze.Add(1)
	if err := c.failing("analyze"); err != nil {
		return nil, err
	}
	return &deviceapi.AnalysisPayload{ParseValid: true, SemValid: true}, nil
}

func newTestScheduler(t *testing.T, c *countingClient) *Scheduler {
	t.Helper()
	s := New(
		adapter.New(c, nil),
		connectivity.NewMonitor(c, time.Second, nil),
		20,
		nil,
	)
	s.cadences = map[models.View]time.Duration{
		models.ViewDashboard:  30 * time.Millisecond,
		models.ViewMonitoring: 20 * time.Millisecond,
		models.ViewStats:      500 * time.Millisecond,
	}
	t.Cleanup(s.Stop)
	return s
}

func TestSwitchViewStopsPreviousTimer(t *testing.T) {
	c := &countingClient{}
	s := newTestScheduler(t, c)
	ctx := context.Background()

	require.NoError(t, s.SetActiveView(ctx, models.ViewMonitoring))
	require.Eventually(t, func() bool {
		return c.metrics.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, s.SetActiveView(ctx, models.ViewStats))
	require.Equal(t, models.ViewStats, s.ActiveView())

	require.Eventually(t, func() bool {
		return c.stats.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	// Let any fetch that was already in flight drain, then confirm no
	// monitoring tick fires after the switch.
	time.Sleep(50 * time.Millisecond)
	after := c.metrics.Load()
	time.Sleep(120 * time.Millisecond)
	require.Equal(t, after, c.metrics.Load())
}

func TestMonitoringTickFetchesAllThree(t *testing.T) {
	c := &countingClient{}
	s := newTestScheduler(t, c)

	require.NoError(t, s.SetActiveView(context.Background(), models.ViewMonitoring))

	require.Eventually(t, func() bool {
		res, ok := s.Result(models.ViewMonitoring)
		return ok && res.Metrics != nil && len(res.ActiveUsers) == 1 && len(res.Logs) == 1
	}, time.Second, 5*time.Millisecond)

	res, _ := s.Result(models.ViewMonitoring)
	require.False(t, res.Stale)
	require.Equal(t, 42, res.Metrics.CPU)
	require.Equal(t, "alice", res.ActiveUsers[0].Username)
}

func TestMonitoringPartialFailureIsStale(t *testing.T) {
	c := &countingClient{}
	c.setFail("metrics", true)
	s := newTestScheduler(t, c)

	require.NoError(t, s.SetActiveView(context.Background(), models.ViewMonitoring))

	require.Eventually(t, func() bool {
		res, ok := s.Result(models.ViewMonitoring)
		return ok && res.Stale
	}, time.Second, 5*time.Millisecond)

	res, _ := s.Result(models.ViewMonitoring)
	// Metrics fell back to synthetic values; the other two are live.
	require.GreaterOrEqual(t, res.Metrics.CPU, 10)
	require.Less(t, res.Metrics.CPU, 90)
	require.Equal(t, "alice", res.ActiveUsers[0].Username)
	require.Len(t, res.Logs, 1)
}

func TestPollingSuspendedWhileDisconnected(t *testing.T) {
	c := &countingClient{}
	c.setFail("health", true)
	s := newTestScheduler(t, c)

	require.NoError(t, s.SetActiveView(context.Background(), models.ViewDashboard))

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, c.stats.Load())

	// Backend recovers; the next tick's probe succeeds and polling
	// resumes on the spot.
	c.setFail("health", false)
	require.Eventually(t, func() bool {
		return c.stats.Load() >= 1
	}, time.Second, 5*time.Millisecond)
}

func TestAnalyzerHasNoTimer(t *testing.T) {
	c := &countingClient{}
	s := newTestScheduler(t, c)

	require.NoError(t, s.SetActiveView(context.Background(), models.ViewAnalyzer))

	time.Sleep(80 * time.Millisecond)
	require.Zero(t, c.analyze.Load())
	_, ok := s.Result(models.ViewAnalyzer)
	require.False(t, ok)
}

func TestTriggerAnalysis(t *testing.T) {
	c := &countingClient{}
	s := newTestScheduler(t, c)

	res := s.TriggerAnalysis(context.Background(), "")

	require.False(t, res.Stale)
	require.Equal(t, models.ViewAnalyzer, res.View)
	require.Equal(t, models.CheckPassed, res.Report.Status)

	stored, ok := s.Result(models.ViewAnalyzer)
	require.True(t, ok)
	require.Equal(t, res.Report.Status, stored.Report.Status)
}

func TestSetActiveViewRejectsUnknown(t *testing.T) {
	s := newTestScheduler(t, &countingClient{})
	require.Error(t, s.SetActiveView(context.Background(), models.View("nonsense")))
}

func TestSetActiveViewProbes(t *testing.T) {
	c := &countingClient{}
	s := newTestScheduler(t, c)

	require.NoError(t, s.SetActiveView(context.Background(), models.ViewAnalyzer))
	require.GreaterOrEqual(t, c.health.Load(), int32(1))
}
