// Package config loads lvforest settings from defaults, an optional file,
// LVFOREST_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. LVFOREST_LOG_LEVEL.
const EnvPrefix = "LVFOREST"

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Log configures the slog handler.
type Log struct {
	Format string `mapstructure:"format"` // text | json
	Level  string `mapstructure:"level"`  // debug | info | warn | error
}

// Telemetry configures tracing. An empty Endpoint discards spans.
type Telemetry struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// Store configures the badger result store. An empty Path disables writing.
type Store struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

// Config is the full runtime configuration.
type Config struct {
	Log         Log       `mapstructure:"log"`
	Telemetry   Telemetry `mapstructure:"telemetry"`
	Store       Store     `mapstructure:"store"`
	Concurrency int       `mapstructure:"concurrency"` // parallel kernel runs
	Direction   string    `mapstructure:"direction"`   // default traversal direction
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:         Log{Format: "text", Level: "info"},
		Telemetry:   Telemetry{ServiceName: "lvforest"},
		Concurrency: runtime.GOMAXPROCS(0),
		Direction:   "out",
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d < 1", ErrInvalid, c.Concurrency)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// Load reads configuration. file may be empty. Flags in fs whose names match
// a key (with "." written as "-", e.g. "log-level") override every other
// source when set; fs may be nil.
func Load(file string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("store.in_memory", d.Store.InMemory)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("direction", d.Direction)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	if fs != nil {
		for _, key := range v.AllKeys() {
			if f := fs.Lookup(strings.ReplaceAll(key, ".", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind %s: %w", key, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return c, c.Validate()
}
