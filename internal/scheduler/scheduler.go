// Package scheduler drives the per-view polling loops of the
// dashboard. Exactly one view is active at a time; only that view's
// timer runs, and switching views cancels the old timer before the new
// one starts.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/LIZZY274/hotspot-panel/internal/adapter"
	"github.com/LIZZY274/hotspot-panel/internal/connectivity"
	"github.com/LIZZY274/hotspot-panel/internal/logging"
	"github.com/LIZZY274/hotspot-panel/internal/models"
)

// viewCadences fixes how often each view refreshes. The analyzer has
// no entry: analysis runs are manual only.
var viewCadences = map[models.View]time.Duration{
	models.ViewDashboard:  30 * time.Second,
	models.ViewMonitoring: 5 * time.Second,
	models.ViewStats:      60 * time.Second,
}

// Scheduler owns one polling loop for the active view and the last
// SyncResult per view. Fetches within a view are serialized: the next
// tick's timer is not armed until the previous fetch has been applied.
type Scheduler struct {
	adapter  *adapter.Adapter
	monitor  *connectivity.Monitor
	log      logging.Logger
	logLimit int
	cadences map[models.View]time.Duration
	now      func() time.Time

	baseCtx   context.Context
	cancelAll context.CancelFunc
	wg        sync.WaitGroup

	mu      sync.Mutex
	active  models.View
	gen     uint64
	cancel  context.CancelFunc
	results map[models.View]models.SyncResult
}

func New(a *adapter.Adapter, m *connectivity.Monitor, logLimit int, log logging.Logger) *Scheduler {
	if log == nil {
		log = logging.Nop{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		adapter:   a,
		monitor:   m,
		log:       log,
		logLimit:  logLimit,
		cadences:  viewCadences,
		now:       time.Now,
		baseCtx:   ctx,
		cancelAll: cancel,
		results:   map[models.View]models.SyncResult{},
	}
}

// SetActiveView switches the polling loop to the given view. The
// previous view's timer is cancelled before anything else happens, so
// no orphan tick can fire after the switch; a fetch already in flight
// is not interrupted, but its result is discarded instead of applied.
// Every switch re-probes connectivity.
func (s *Scheduler) SetActiveView(ctx context.Context, v models.View) error {
	if !v.Valid() {
		return fmt.Errorf("unknown view %q", v)
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	gen := s.gen
	s.active = v

	cadence, recurring := s.cadences[v]
	var loopCtx context.Context
	if recurring {
		loopCtx, s.cancel = context.WithCancel(s.baseCtx)
	}
	s.mu.Unlock()

	s.monitor.Probe(ctx)

	if recurring {
		s.wg.Add(1)
		go s.loop(loopCtx, v, gen, cadence)
	}
	return nil
}

// ActiveView returns the currently polled view.
func (s *Scheduler) ActiveView() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Result returns the last applied SyncResult for a view.
func (s *Scheduler) Result(v models.View) (models.SyncResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[v]
	return res, ok
}

// TriggerAnalysis runs a configuration analysis on demand and records
// it as the analyzer view's result.
func (s *Scheduler) TriggerAnalysis(ctx context.Context, code string) models.SyncResult {
	report, stale := s.adapter.Analysis(ctx, code)
	res := models.SyncResult{
		View:      models.ViewAnalyzer,
		UpdatedAt: s.now(),
		Stale:     stale,
		Report:    report,
	}
	s.mu.Lock()
	s.results[models.ViewAnalyzer] = res
	s.mu.Unlock()
	return res
}

// Stop cancels the active loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.cancelAll()
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, v models.View, gen uint64, cadence time.Duration) {
	defer s.wg.Done()
	for {
		s.tick(ctx, v, gen)

		// The timer is armed only after the fetch above has been
		// applied, keeping ticks strictly serialized.
		t := time.NewTimer(cadence)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, v models.View, gen uint64) {
	if !s.monitor.Connected() {
		// Polling is suspended while disconnected. The probe is
		// coalesced and bounded; polling resumes on the tick after
		// it first succeeds again.
		if s.monitor.Probe(ctx).State != connectivity.StateConnected {
			s.log.Debug(ctx, "poll skipped, backend disconnected", "view", v)
			return
		}
	}

	res := s.fetch(ctx, v)
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// The view changed while this fetch was in flight.
		return
	}
	s.results[v] = res
}

func (s *Scheduler) fetch(ctx context.Context, v models.View) models.SyncResult {
	res := models.SyncResult{View: v, UpdatedAt: s.now()}

	switch v {
	case models.ViewDashboard, models.ViewStats:
		res.Stats, res.Stale = s.adapter.SystemStats(ctx)

	case models.ViewMonitoring:
		// Three independent fetches per tick; each degrades to
		// synthetic data on its own, so the group never fails as a
		// whole.
		var (
			wg                     sync.WaitGroup
			mStale, uStale, lStale bool
		)
		wg.Add(3)
		go func() {
			defer wg.Done()
			res.Metrics, mStale = s.adapter.Metrics(ctx)
		}()
		go func() {
			defer wg.Done()
			res.ActiveUsers, uStale = s.adapter.ActiveUsers(ctx)
		}()
		go func() {
			defer wg.Done()
			res.Logs, lStale = s.adapter.Logs(ctx, s.logLimit)
		}()
		wg.Wait()
		res.Stale = mStale || uStale || lStale
	}

	return res
}
