// Package feed implements the CarFlow feed server.
package feed

import (
	"time"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// Default configuration values.
const (
	DefaultListenAddr       = "127.0.0.1:8000"
	DefaultProducerInterval = time.Minute
	DefaultMetricsAddr      = "127.0.0.1:9181"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Config is the root configuration for carflow-feed.
type Config struct {
	Feed    FeedSection    `koanf:"feed"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
}

// FeedSection configures the listener and the producer.
type FeedSection struct {
	// ListenAddr is the TCP listen address ("interface:port").
	ListenAddr string `koanf:"listen"`

	// ProducerInterval is the pace of new sightings.
	ProducerInterval time.Duration `koanf:"interval"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DefaultConfig returns the default feed server configuration.
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedSection{
			ListenAddr:       DefaultListenAddr,
			ProducerInterval: DefaultProducerInterval,
		},
		Metrics: MetricsSection{
			Enabled: false,
			Addr:    DefaultMetricsAddr,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// VerifyConfig validates the feed server configuration.
func VerifyConfig(cfg *Config) error {
	if cfg.Feed.ListenAddr == "" {
		return domain.ErrConfigInvalid.WithDetails("feed.listen is required")
	}
	if cfg.Feed.ProducerInterval <= 0 {
		return domain.ErrConfigInvalid.WithDetails("feed.interval must be positive")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		return domain.ErrConfigInvalid.WithDetails("metrics.addr is required when metrics are enabled")
	}
	return nil
}
