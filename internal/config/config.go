// Package config loads process configuration the way arc's
// internal/config package does: layered defaults, an optional TOML
// file, then environment variable overrides, all through viper (§4.F).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration shape for the bufrquery CLI driver.
type Config struct {
	Log     LogConfig
	Fixture FixtureConfig
}

// LogConfig controls the global logger (§4.G).
type LogConfig struct {
	Level  string
	Format string
}

// FixtureConfig controls the fixture-loader collaborator (§4.E).
type FixtureConfig struct {
	Path string

	// MissingValueOverride, when non-zero, replaces
	// resultset.MissingThreshold for every ResultSet the CLI driver
	// builds (§4.F, §9) — see resultset.ResultSet.SetMissingThreshold.
	MissingValueOverride float64
}

// Load reads configuration from an optional file at path (if non-empty),
// then applies BUFRQUERY_-prefixed environment overrides, the same
// precedence order arc's Load uses. Fields are read individually from
// viper rather than unmarshaled wholesale, so AutomaticEnv overrides are
// guaranteed to apply to every field regardless of whether it was also
// set in the config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BUFRQUERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Fixture: FixtureConfig{
			Path:                 v.GetString("fixture.path"),
			MissingValueOverride: v.GetFloat64("fixture.missing_value_override"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("fixture.path", "")
	v.SetDefault("fixture.missing_value_override", 0.0)
}
