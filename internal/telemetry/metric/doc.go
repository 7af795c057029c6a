// Package metric provides Prometheus metrics for CarFlow.
//
// It exposes metrics in Prometheus format for monitoring feed session
// outcomes, merged record counts, and cycle durations. Components take
// the interface-based Registry so tests and metric-less runs can use
// the nop implementation.
package metric
