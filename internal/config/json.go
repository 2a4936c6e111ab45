package config

import (
	"encoding/json"
	"os"

	"adminboard/internal/flagx"
	"adminboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "800ms" or as integer nanoseconds. Parsed values are copied into the
// runtime Config. Absent fields leave the current value untouched.
type JsonConfig struct {
	DatabasePath  *string         `json:"database_path"`
	SecretKey     *string         `json:"secret_key"`
	TokenValidity *timex.Duration `json:"token_validity"`
	AuthLatency   *timex.Duration `json:"auth_latency"`
	RosterLatency *timex.Duration `json:"roster_latency"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; with neither present nothing is
// loaded. Read or unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.TokenValidity != nil {
		cfg.TokenValidity = jc.TokenValidity.Duration
	}
	if jc.AuthLatency != nil {
		cfg.AuthLatency = jc.AuthLatency.Duration
	}
	if jc.RosterLatency != nil {
		cfg.RosterLatency = jc.RosterLatency.Duration
	}
}
