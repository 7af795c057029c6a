// Package metric provides Prometheus metrics for CarFlow.
package metric

// Registry holds all application metrics.
type Registry struct {
	// Session metrics
	SessionsInFlight Gauge
	SessionsTotal    CounterVec // label: outcome (success, transport, malformed, timeout)

	// Cycle metrics
	CyclesTotal   Counter
	CycleDuration Histogram
	RecordsMerged Counter

	// Feed server metrics
	FeedConnections Counter
	FeedSightings   Gauge
}

// Counter is a cumulative metric that only increases.
type Counter interface {
	Inc()
	Add(float64)
}

// CounterVec is a Counter with labels.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	Set(float64)
	Inc()
	Dec()
	Add(float64)
	Sub(float64)
}

// Histogram samples observations and counts them in buckets.
type Histogram interface {
	Observe(float64)
}

// Outcome label values for SessionsTotal.
const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport"
	OutcomeMalformed = "malformed"
	OutcomeTimeout   = "timeout"
)

// nopCounter implements Counter and does nothing.
type nopCounter struct{}

func (nopCounter) Inc()        {}
func (nopCounter) Add(float64) {}

// nopCounterVec implements CounterVec and does nothing.
type nopCounterVec struct{}

func (nopCounterVec) WithLabelValues(...string) Counter { return nopCounter{} }

// nopGauge implements Gauge and does nothing.
type nopGauge struct{}

func (nopGauge) Set(float64) {}
func (nopGauge) Inc()        {}
func (nopGauge) Dec()        {}
func (nopGauge) Add(float64) {}
func (nopGauge) Sub(float64) {}

// nopHistogram implements Histogram and does nothing.
type nopHistogram struct{}

func (nopHistogram) Observe(float64) {}

// NewNopRegistry returns a registry whose metrics discard every
// observation. Used in tests and when metrics are disabled.
func NewNopRegistry() *Registry {
	return &Registry{
		SessionsInFlight: nopGauge{},
		SessionsTotal:    nopCounterVec{},
		CyclesTotal:      nopCounter{},
		CycleDuration:    nopHistogram{},
		RecordsMerged:    nopCounter{},
		FeedConnections:  nopCounter{},
		FeedSightings:    nopGauge{},
	}
}
