package config

import (
	"encoding/json"
	"os"

	"github.com/LIZZY274/hotspot-panel/internal/flagx"
	"github.com/LIZZY274/hotspot-panel/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so files can specify intervals either as strings like
// "5s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL   string         `json:"api_base_url"`
	DBPath       string         `json:"db_path"`
	ProbeTimeout timex.Duration `json:"probe_timeout"`
	LoginDelay   timex.Duration `json:"login_delay"`
	LogLimit     int            `json:"log_limit"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Missing flag means no JSON stage. Zero values in the
// file leave the current setting untouched. Read or unmarshal errors
// panic; the loader runs before any state exists worth preserving.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.ProbeTimeout.Duration > 0 {
		cfg.ProbeTimeout = jc.ProbeTimeout.Duration
	}
	if jc.LoginDelay.Duration > 0 {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.LogLimit > 0 {
		cfg.LogLimit = jc.LogLimit
	}
}
