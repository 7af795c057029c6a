// Package collector implements the CarFlow fan-out/fan-in client.
package collector

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yndnr/carflow-go/internal/collector/config"
	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

// Controller orchestrates aggregate cycles against the configured feed
// list. At most one cycle may be in flight per controller; starting a
// second one while the first runs fails with CF-CYCLE-4090.
type Controller struct {
	mu       sync.RWMutex
	cfg      *config.CollectorConfig
	inFlight atomic.Bool
	log      logger.Logger
	metrics  *metric.Registry
}

// New creates a controller. A nil metrics registry falls back to the
// nop implementation.
func New(cfg *config.CollectorConfig, log logger.Logger, metrics *metric.Registry) *Controller {
	if log == nil {
		log = logger.Default()
	}
	if metrics == nil {
		metrics = metric.NewNopRegistry()
	}
	return &Controller{
		cfg:     cfg,
		log:     log,
		metrics: metrics,
	}
}

// Reload replaces the controller configuration. Verification is the
// caller's responsibility; the next cycle uses the new feed list.
func (c *Controller) Reload(cfg *config.CollectorConfig) {
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
	c.log.Info("collector configuration reloaded", "feeds", len(cfg.Collector.Feeds))
}

// snapshot returns the current configuration.
func (c *Controller) snapshot() *config.CollectorConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// UpdateCars runs one aggregate cycle: it builds the feed address list,
// fans out one session per feed, and returns the completed CycleResult
// including per-feed failures. A failed feed contributes zero records;
// it never fails the cycle.
func (c *Controller) UpdateCars(ctx context.Context) (*domain.CycleResult, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrCycleInFlight
	}
	defer c.inFlight.Store(false)

	cfg := c.snapshot()
	addrs, err := cfg.FeedAddresses()
	if err != nil {
		return nil, err
	}

	cycleID, err := domain.GenerateCycleID()
	if err != nil {
		return nil, err
	}
	ctx = logger.WithCycleID(ctx, cycleID)

	start := time.Now()
	agg := NewAggregator(cfg.Collector.SessionTimeout, c.log, c.metrics)
	result := agg.Run(ctx, cycleID, addrs)

	c.metrics.CyclesTotal.Inc()
	c.metrics.CycleDuration.Observe(time.Since(start).Seconds())

	c.log.Info("update cycle complete",
		"cycle_id", cycleID,
		"duration", time.Since(start),
		"records", len(result.Records),
		"failures", len(result.Failures))
	return result, nil
}

// Watch runs update cycles until the context is cancelled, pausing the
// configured watch interval between cycles. Each completed result is
// passed to the callback; cycle-level errors are logged and the loop
// continues.
func (c *Controller) Watch(ctx context.Context, each func(*domain.CycleResult)) error {
	for {
		result, err := c.UpdateCars(ctx)
		if err != nil {
			c.log.Error("update cycle failed", "error", err)
		} else if each != nil {
			each(result)
		}

		interval := c.snapshot().Collector.WatchInterval
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
