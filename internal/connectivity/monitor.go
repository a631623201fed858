// Package connectivity tracks reachability of the device backend. A
// single Monitor owns the tri-state connection status; everything else
// only reads it.
package connectivity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/LIZZY274/hotspot-panel/internal/deviceapi"
	"github.com/LIZZY274/hotspot-panel/internal/logging"
)

// State is the reachability of the backend as of the last probe.
type State string

const (
	StateChecking     State = "checking"
	StateConnected    State = "connected"
	StateDisconnected State = "disconnected"
)

// Status is the probe outcome shown in the connectivity banner.
type Status struct {
	State     State
	Err       string
	CheckedAt time.Time
}

// HealthChecker is the one backend call the monitor needs.
type HealthChecker interface {
	Health(ctx context.Context) error
}

const DefaultProbeTimeout = 5 * time.Second

// Monitor issues bounded health probes against the backend. At most
// one probe is outstanding: callers arriving while one is in flight
// wait for that probe's result instead of issuing their own.
type Monitor struct {
	api     HealthChecker
	log     logging.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.Mutex
	status Status
	call   *probeCall
}

type probeCall struct {
	done   chan struct{}
	status Status
}

func NewMonitor(api HealthChecker, timeout time.Duration, log logging.Logger) *Monitor {
	if log == nil {
		log = logging.Nop{}
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Monitor{
		api:     api,
		log:     log,
		timeout: timeout,
		now:     time.Now,
		status:  Status{State: StateChecking},
	}
}

// Probe runs a health check, or joins the one already in flight, and
// returns the resulting status.
func (m *Monitor) Probe(ctx context.Context) Status {
	m.mu.Lock()
	if call := m.call; call != nil {
		m.mu.Unlock()
		select {
		case <-call.done:
			return call.status
		case <-ctx.Done():
			return m.Status()
		}
	}

	call := &probeCall{done: make(chan struct{})}
	m.call = call
	m.status = Status{State: StateChecking, CheckedAt: m.now()}
	m.mu.Unlock()

	status := m.run(ctx)

	m.mu.Lock()
	m.status = status
	m.call = nil
	m.mu.Unlock()

	call.status = status
	close(call.done)
	return status
}

// Status returns the outcome of the most recent probe.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Connected reports whether the last probe reached the backend.
func (m *Monitor) Connected() bool {
	return m.Status().State == StateConnected
}

func (m *Monitor) run(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.api.Health(ctx)
	status := Status{CheckedAt: m.now()}

	var se *deviceapi.StatusError
	switch {
	case err == nil:
		status.State = StateConnected
	case errors.As(err, &se):
		status.State = StateDisconnected
		status.Err = fmt.Sprintf("backend returned status %d", se.Code)
	case errors.Is(err, deviceapi.ErrTimeout):
		status.State = StateDisconnected
		status.Err = fmt.Sprintf("backend did not respond within %s", m.timeout)
	default:
		status.State = StateDisconnected
		status.Err = "backend unreachable"
	}

	if status.State == StateDisconnected {
		m.log.Warn(ctx, "connectivity probe failed", "reason", status.Err)
	} else {
		m.log.Debug(ctx, "connectivity probe ok")
	}
	return status
}
