// Package config defines the collector configuration structure.
package config

import (
	"github.com/yndnr/carflow-go/internal/core/domain"
)

// Verify validates the configuration.
func Verify(cfg *CollectorConfig) error {
	if _, err := domain.ParseFeedAddresses(cfg.Collector.Feeds); err != nil {
		return domain.ErrConfigInvalid.WithCause(err)
	}
	if cfg.Collector.SessionTimeout < 0 {
		return domain.ErrConfigInvalid.WithDetails("collector.timeout must not be negative")
	}
	if cfg.Collector.WatchInterval <= 0 {
		return domain.ErrConfigInvalid.WithDetails("collector.interval must be positive")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		return domain.ErrConfigInvalid.WithDetails("metrics.addr is required when metrics are enabled")
	}
	return nil
}

// FeedAddresses parses the configured feed list, preserving order and
// duplicates.
func (c *CollectorConfig) FeedAddresses() ([]domain.FeedAddress, error) {
	return domain.ParseFeedAddresses(c.Collector.Feeds)
}
