// Package config defines the collector configuration structure.
package config

import "time"

// CollectorConfig is the root configuration for carflow-collector.
type CollectorConfig struct {
	Collector CollectorSection `koanf:"collector"`
	Metrics   MetricsSection   `koanf:"metrics"`
	Log       LogSection       `koanf:"log"`
}

// CollectorSection configures the aggregate cycle.
type CollectorSection struct {
	// Feeds is the list of feed addresses ("host:port") to query each
	// cycle. Duplicate entries are legal; each occurrence gets its own
	// session.
	Feeds []string `koanf:"feeds"`

	// SessionTimeout bounds each feed session. A session that has not
	// resolved within the timeout fails with CF-NET-5040. Zero disables
	// the deadline.
	SessionTimeout time.Duration `koanf:"timeout"`

	// WatchInterval is the pause between cycles in watch mode.
	WatchInterval time.Duration `koanf:"interval"`
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
