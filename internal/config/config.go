// Package config handles configuration for the adminboard demo binary:
// defaults, environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the adminboard CLI.
//
// Fields:
//   - DatabasePath: SQLite file backing the durable storage slots.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidity: session token lifetime.
//   - AuthLatency: simulated round-trip delay for session operations.
//   - RosterLatency: simulated round-trip delay for roster operations.
type Config struct {
	DatabasePath  string
	SecretKey     string
	TokenValidity time.Duration
	AuthLatency   time.Duration
	RosterLatency time.Duration
}

// LoadDefaults populates c with development defaults.
// NOTE: The secret is insecure and should be overridden outside demos.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "admin.db"
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.AuthLatency = 800 * time.Millisecond
	c.RosterLatency = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
