// Package collector implements the CarFlow fan-out/fan-in client.
package collector

import (
	"context"
	"time"

	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

// Aggregator runs one aggregate cycle: concurrent fan-out of feed
// sessions and single-consumer fan-in of their outcomes.
type Aggregator struct {
	sessionTimeout time.Duration
	log            logger.Logger
	metrics        *metric.Registry
}

// NewAggregator creates an aggregator. A nil metrics registry falls
// back to the nop implementation.
func NewAggregator(sessionTimeout time.Duration, log logger.Logger, metrics *metric.Registry) *Aggregator {
	if log == nil {
		log = logger.Default()
	}
	if metrics == nil {
		metrics = metric.NewNopRegistry()
	}
	return &Aggregator{
		sessionTimeout: sessionTimeout,
		log:            log,
		metrics:        metrics,
	}
}

// Run launches one session per address and blocks until every session
// has resolved, returning the completed CycleResult.
//
// All sessions are started before any outcome is collected; outcomes
// merge in arrival order, which is deliberately unrelated to the
// address-list order. Failures count toward completion like successes,
// so one dead feed never stalls the cycle. An empty address list
// completes immediately.
func (a *Aggregator) Run(ctx context.Context, cycleID string, addrs []domain.FeedAddress) *domain.CycleResult {
	result := domain.NewCycleResult(cycleID, len(addrs))
	log := a.log.With("cycle_id", cycleID)

	if len(addrs) == 0 {
		log.Info("no feeds configured, cycle complete")
		return result
	}

	// Buffered for the exact session count: a session goroutine performs
	// its single outcome send and exits without waiting on the consumer.
	outcomes := make(chan domain.Outcome, len(addrs))

	log.Info("fan-out started", "feeds", len(addrs))
	for _, addr := range addrs {
		a.metrics.SessionsInFlight.Inc()

		session, err := NewSession(addr, a.sessionTimeout, a.log)
		if err != nil {
			// ID generation failed; resolve the slot as a failure so the
			// cycle still terminates.
			outcomes <- domain.FailureOutcome(addr, "", err)
			continue
		}

		go func() {
			outcomes <- session.Run(ctx)
		}()
	}

	// Single consumer: the only goroutine that touches the result.
	for i := 0; i < len(addrs); i++ {
		outcome := <-outcomes
		a.metrics.SessionsInFlight.Dec()
		a.metrics.SessionsTotal.WithLabelValues(outcomeLabel(outcome)).Inc()

		if outcome.Failed() {
			log.Warn("feed session failed",
				"session_id", outcome.SessionID,
				"feed", outcome.Address.String(),
				"error", outcome.Err)
		} else {
			a.metrics.RecordsMerged.Add(float64(len(outcome.Records)))
			log.Debug("feed session resolved",
				"session_id", outcome.SessionID,
				"feed", outcome.Address.String(),
				"records", len(outcome.Records))
		}

		result.Absorb(outcome)
	}

	log.Info("fan-in complete",
		"resolved", result.Resolved,
		"records", len(result.Records),
		"failures", len(result.Failures))
	return result
}

// outcomeLabel maps an outcome to its metrics label value.
func outcomeLabel(o domain.Outcome) string {
	if !o.Failed() {
		return metric.OutcomeSuccess
	}
	switch domain.GetErrorCode(o.Err) {
	case "CF-NET-5040":
		return metric.OutcomeTimeout
	case "CF-WIRE-4000":
		return metric.OutcomeMalformed
	default:
		return metric.OutcomeTransport
	}
}
