package main

import (
	"context"
	"log"
	"os"

	"github.com/LIZZY274/hotspot-panel/internal/buildinfo"
	"github.com/LIZZY274/hotspot-panel/internal/config"
	"github.com/LIZZY274/hotspot-panel/internal/logging"
	"github.com/LIZZY274/hotspot-panel/internal/panel"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := panel.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
