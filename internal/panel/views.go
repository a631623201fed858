package panel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/LIZZY274/hotspot-panel/internal/connectivity"
	"github.com/LIZZY274/hotspot-panel/internal/models"
)

// Status prints the connectivity banner after a fresh probe.
func (a *App) Status(ctx context.Context) error {
	status := a.monitor.Probe(ctx)
	switch status.State {
	case connectivity.StateConnected:
		fmt.Println("Backend connected.")
	default:
		fmt.Printf("Backend disconnected: %s (retries on next probe)\n", status.Err)
	}
	return nil
}

// View switches the active dashboard section and its polling cadence.
func (a *App) View(ctx context.Context, name string) error {
	v := models.View(name)
	if err := a.scheduler.SetActiveView(ctx, v); err != nil {
		fmt.Println(err)
		fmt.Printf("Known views: %v\n", models.Views)
		return nil
	}
	fmt.Printf("Active view: %s\n", v)
	return nil
}

// Show prints the last synchronized result of the active view.
func (a *App) Show(ctx context.Context) error {
	v := a.scheduler.ActiveView()
	if v == "" {
		fmt.Println("No active view. Use: view <dashboard|monitoring|stats|analyzer>")
		return nil
	}
	res, ok := a.scheduler.Result(v)
	if !ok {
		fmt.Printf("No data for %s yet.\n", v)
		return nil
	}
	return printResult(res)
}

// Config fetches and prints the current captive-portal configuration.
func (a *App) Config(ctx context.Context) error {
	cfg, stale := a.adapter.HotspotConfig(ctx)
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	if stale {
		fmt.Println("(stale: backend unreachable, defaults shown)")
	}
	return nil
}

// Analyze runs a configuration analysis on demand. With no file
// argument the stock sample configuration is analyzed.
func (a *App) Analyze(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Config file (empty for sample)", os.Stdout)
	if err != nil {
		return err
	}

	var code string
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("cannot read %s: %v\n", path, err)
			return nil
		}
		code = string(raw)
	}

	res := a.scheduler.TriggerAnalysis(ctx, code)
	return printResult(res)
}

func printResult(res models.SyncResult) error {
	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	if res.Stale {
		fmt.Println("(stale: synthetic fallback data in use)")
	}
	return nil
}
