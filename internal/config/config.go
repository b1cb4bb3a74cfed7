// Package config loads daemon configuration from defaults, an optional YAML
// file, and CRONEXPAND_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the cronexpandd daemon.
type Config struct {
	// HTTPAddr is the listen address of the HTTP API and metrics endpoint.
	HTTPAddr string

	// NATSURL enables the NATS responder when non-empty.
	NATSURL string

	// NATSSubject is the subject the responder answers on.
	NATSSubject string

	// HistoryPath enables the SQLite request audit log when non-empty.
	HistoryPath string

	// HistoryMaxAge bounds retained audit records; older ones are cleaned up.
	HistoryMaxAge time.Duration

	// MonitorInterval is the resource sampling period.
	MonitorInterval time.Duration
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject", "cron.expand")
	v.SetDefault("history.path", "")
	v.SetDefault("history.max_age", "720h")
	v.SetDefault("monitor.interval", "15s")

	v.SetEnvPrefix("CRONEXPAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		HTTPAddr:        v.GetString("http_addr"),
		NATSURL:         v.GetString("nats.url"),
		NATSSubject:     v.GetString("nats.subject"),
		HistoryPath:     v.GetString("history.path"),
		HistoryMaxAge:   v.GetDuration("history.max_age"),
		MonitorInterval: v.GetDuration("monitor.interval"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("http_addr must not be empty")
	}
	if c.NATSURL != "" && c.NATSSubject == "" {
		return fmt.Errorf("nats.subject must not be empty when nats.url is set")
	}
	if c.MonitorInterval <= 0 {
		return fmt.Errorf("monitor.interval must be positive, got %s", c.MonitorInterval)
	}
	if c.HistoryPath != "" && c.HistoryMaxAge <= 0 {
		return fmt.Errorf("history.max_age must be positive, got %s", c.HistoryMaxAge)
	}
	return nil
}
