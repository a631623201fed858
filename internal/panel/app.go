// Package panel wires the dashboard services together and drives them
// from an interactive console.
package panel

import (
	"bufio"
	"context"
	"os"

	"github.com/LIZZY274/hotspot-panel/internal/accounts"
	"github.com/LIZZY274/hotspot-panel/internal/adapter"
	"github.com/LIZZY274/hotspot-panel/internal/auth"
	"github.com/LIZZY274/hotspot-panel/internal/config"
	"github.com/LIZZY274/hotspot-panel/internal/connectivity"
	"github.com/LIZZY274/hotspot-panel/internal/deviceapi"
	"github.com/LIZZY274/hotspot-panel/internal/kvstore"
	"github.com/LIZZY274/hotspot-panel/internal/logging"
	"github.com/LIZZY274/hotspot-panel/internal/scheduler"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	kv        *kvstore.SQLite
	auth      *auth.Manager
	monitor   *connectivity.Monitor
	scheduler *scheduler.Scheduler
	adapter   *adapter.Adapter
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewDefault()
	}

	kv, err := kvstore.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	api := deviceapi.NewHTTPClient(cfg.APIBaseURL, cfg.ProbeTimeout)
	repo := accounts.NewRepository(kv, log)

	mgr := auth.NewManager(repo, kv, log)
	mgr.LoginDelay = cfg.LoginDelay

	ad := adapter.New(api, log)
	mon := connectivity.NewMonitor(api, cfg.ProbeTimeout, log)

	return &App{
		config:    cfg,
		log:       log,
		kv:        kv,
		auth:      mgr,
		monitor:   mon,
		scheduler: scheduler.New(ad, mon, cfg.LogLimit, log),
		adapter:   ad,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session, probes the backend once, and
// hands control to the console loop.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "restoring session", "err", err)
	}
	a.monitor.Probe(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.prompt, scanner)
	return nil
}

// Close stops the polling loop and releases the store.
func (a *App) Close() {
	a.scheduler.Stop()
	if err := a.kv.Close(); err != nil {
		a.log.Warn(context.Background(), "closing store", "err", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) prompt() string {
	s := a.auth.CurrentSession()
	if s == nil {
		return "logged out"
	}
	status := a.monitor.Status()
	return s.Username + " @ " + string(status.State)
}
