package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with ADMINBOARD_* environment variables. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv.Load never overwrites).
//
// Recognized variables:
//
//	ADMINBOARD_DATABASE_PATH
//	ADMINBOARD_SECRET_KEY
//	ADMINBOARD_TOKEN_VALIDITY   (Go duration, e.g. "24h")
//	ADMINBOARD_AUTH_LATENCY     (Go duration, e.g. "800ms")
//	ADMINBOARD_ROSTER_LATENCY   (Go duration, e.g. "500ms")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("ADMINBOARD_DATABASE_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("ADMINBOARD_SECRET_KEY")); v != "" {
		cfg.SecretKey = v
	}
	if d, ok := envDuration("ADMINBOARD_TOKEN_VALIDITY"); ok {
		cfg.TokenValidity = d
	}
	if d, ok := envDuration("ADMINBOARD_AUTH_LATENCY"); ok {
		cfg.AuthLatency = d
	}
	if d, ok := envDuration("ADMINBOARD_ROSTER_LATENCY"); ok {
		cfg.RosterLatency = d
	}
}

func envDuration(name string) (time.Duration, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}
