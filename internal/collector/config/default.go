// Package config defines the collector configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultFeedAddr       = "localhost:8000"
	DefaultSessionTimeout = 10 * time.Second
	DefaultWatchInterval  = time.Minute
	DefaultMetricsAddr    = "127.0.0.1:9180"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default collector configuration.
func Default() *CollectorConfig {
	return &CollectorConfig{
		Collector: CollectorSection{
			Feeds:          []string{DefaultFeedAddr},
			SessionTimeout: DefaultSessionTimeout,
			WatchInterval:  DefaultWatchInterval,
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
