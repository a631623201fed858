package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the process environment.
// A .env file in the working directory is loaded first when present;
// a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.APIBaseURL = env("HOTSPOT_API_URL", cfg.APIBaseURL)
	cfg.DBPath = env("HOTSPOT_DB_PATH", cfg.DBPath)
	cfg.ProbeTimeout = envDuration("HOTSPOT_PROBE_TIMEOUT", cfg.ProbeTimeout)
	cfg.LoginDelay = envDuration("HOTSPOT_LOGIN_DELAY", cfg.LoginDelay)
	cfg.LogLimit = envInt("HOTSPOT_LOG_LIMIT", cfg.LogLimit)
}

func env(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

func envDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return d
	}
	return parsed
}
