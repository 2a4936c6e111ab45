package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlags_Overrides(t *testing.T) {
	orig := os.Args
	os.Args = []string{"adminboard", "-d", "cli.db", "-s", "cli-secret", "-l", "25"}
	t.Cleanup(func() { os.Args = orig })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "cli.db", cfg.DatabasePath)
	require.Equal(t, "cli-secret", cfg.SecretKey)
	require.Equal(t, 25*time.Millisecond, cfg.AuthLatency)
}

func TestParseFlags_DefaultsKeptWithoutFlags(t *testing.T) {
	resetArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "admin.db", cfg.DatabasePath)
	require.Equal(t, 800*time.Millisecond, cfg.AuthLatency)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	orig := os.Args
	os.Args = []string{"adminboard", "-c", "conf.json", "-d", "cli.db"}
	t.Cleanup(func() { os.Args = orig })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	require.Equal(t, "cli.db", cfg.DatabasePath)
}
