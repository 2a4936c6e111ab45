package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	orig := os.Args
	os.Args = []string{"adminboard"}
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "admin.db", cfg.DatabasePath)
	require.Equal(t, "secretKey", cfg.SecretKey)
	require.Equal(t, 24*time.Hour, cfg.TokenValidity)
	require.Equal(t, 800*time.Millisecond, cfg.AuthLatency)
	require.Equal(t, 500*time.Millisecond, cfg.RosterLatency)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv("ADMINBOARD_DATABASE_PATH", "env.db")
	t.Setenv("ADMINBOARD_AUTH_LATENCY", "10ms")

	cfg := LoadConfig()
	require.Equal(t, "env.db", cfg.DatabasePath)
	require.Equal(t, 10*time.Millisecond, cfg.AuthLatency)
	require.Equal(t, "secretKey", cfg.SecretKey)
}

func TestLoadConfig_InvalidEnvDurationIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv("ADMINBOARD_TOKEN_VALIDITY", "tomorrow")

	cfg := LoadConfig()
	require.Equal(t, 24*time.Hour, cfg.TokenValidity)
}

func TestLoadConfig_FlagsWinOverEnv(t *testing.T) {
	orig := os.Args
	os.Args = []string{"adminboard", "-d", "flag.db", "-l", "5"}
	t.Cleanup(func() { os.Args = orig })
	t.Setenv("ADMINBOARD_DATABASE_PATH", "env.db")

	cfg := LoadConfig()
	require.Equal(t, "flag.db", cfg.DatabasePath)
	require.Equal(t, 5*time.Millisecond, cfg.AuthLatency)
}
