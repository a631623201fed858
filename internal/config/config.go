// Package config holds runtime settings for the HotSpot panel and the
// layered loader that populates them: defaults, then a JSON file, then
// environment variables, then command-line flags. Later sources take
// precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the panel core.
//
// Fields:
//   - APIBaseURL: base URL of the remote device backend (e.g. http://host:8080).
//   - DBPath: path of the local sqlite file backing the persisted namespace.
//   - ProbeTimeout: hard deadline for a single connectivity probe.
//   - LoginDelay: simulated network latency of local login/registration.
//   - LogLimit: number of device log lines requested per monitoring tick.
type Config struct {
	APIBaseURL   string
	DBPath       string
	ProbeTimeout time.Duration
	LoginDelay   time.Duration
	LogLimit     int
}

// LoadDefaults populates c with the stock settings of the panel.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.DBPath = "panel.db"
	c.ProbeTimeout = 5 * time.Second
	c.LoginDelay = 1200 * time.Millisecond
	c.LogLimit = 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a -c/-config file is given), the environment, and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
