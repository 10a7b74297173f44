package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Config holds the settings of the serve command.
type Config struct {
	Port        int
	DataFile    string
	Metrics     bool
	CORSOrigins string
	Color       bool
}

// DefaultConfig returns the settings used when neither a flag nor an
// environment variable is given.
func DefaultConfig() Config {
	return Config{
		Port:        5000,
		DataFile:    "./data/scenarios.json",
		Metrics:     true,
		CORSOrigins: "*",
		Color:       true,
	}
}

// bindFlags registers the serve flags with their built-in defaults.
func bindFlags(flags *pflag.FlagSet) {
	def := DefaultConfig()
	flags.IntP("port", "p", def.Port, "HTTP server port [$PORT]")
	flags.StringP("data", "d", def.DataFile, "Scenario data file path or afs URL [$DATA_FILE]")
	flags.Bool("metrics", def.Metrics, "Expose Prometheus metrics on /metrics [$METRICS_ENABLED]")
	flags.String("cors-origins", def.CORSOrigins, "Comma-separated allowed CORS origins [$CORS_ORIGINS]")
	flags.Bool("color", def.Color, "Color warnings and errors in the log [$LOG_COLOR]")
}

// LoadConfig resolves every setting from, in order of precedence, an
// explicitly set flag, the environment, and the built-in default.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()

	port, err := intSetting(flags, "port", "PORT")
	if err != nil {
		return Config{}, err
	}
	if port < 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", port)
	}
	cfg.Port = port

	if cfg.DataFile, err = stringSetting(flags, "data", "DATA_FILE"); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DataFile) == "" {
		return Config{}, fmt.Errorf("data file must not be empty")
	}
	if cfg.Metrics, err = boolSetting(flags, "metrics", "METRICS_ENABLED"); err != nil {
		return Config{}, err
	}
	if cfg.CORSOrigins, err = stringSetting(flags, "cors-origins", "CORS_ORIGINS"); err != nil {
		return Config{}, err
	}
	if cfg.Color, err = boolSetting(flags, "color", "LOG_COLOR"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envValue(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value := strings.TrimSpace(raw)
	return value, value != ""
}

func stringSetting(flags *pflag.FlagSet, name, env string) (string, error) {
	if !flags.Changed(name) {
		if value, ok := envValue(env); ok {
			return value, nil
		}
	}
	return flags.GetString(name)
}

func intSetting(flags *pflag.FlagSet, name, env string) (int, error) {
	if !flags.Changed(name) {
		if value, ok := envValue(env); ok {
			n, err := strconv.Atoi(value)
			if err != nil {
				return 0, fmt.Errorf("invalid %s value %q: %w", env, value, err)
			}
			return n, nil
		}
	}
	return flags.GetInt(name)
}

func boolSetting(flags *pflag.FlagSet, name, env string) (bool, error) {
	if !flags.Changed(name) {
		if value, ok := envValue(env); ok {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return false, fmt.Errorf("invalid %s value %q: %w", env, value, err)
			}
			return b, nil
		}
	}
	return flags.GetBool(name)
}
