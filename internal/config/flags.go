package config

import (
	"flag"
	"os"

	"github.com/LIZZY274/hotspot-panel/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the remote device backend
//	-d string   path of the local sqlite database
//	-l int      device log lines requested per monitoring tick
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, so it does not interfere with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the device backend")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database file")
	fs.IntVar(&cfg.LogLimit, "l", cfg.LogLimit, "log lines per monitoring tick")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
