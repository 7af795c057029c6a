// Package collector implements the CarFlow fan-out/fan-in client.
//
// One aggregate cycle queries every configured feed concurrently:
//
//   - Session owns one outbound TCP connection, buffers bytes until the
//     peer closes, then decodes the payload. Each session resolves to
//     exactly one Outcome, success or failure.
//   - Aggregator launches one Session per configured address and drains
//     their outcomes through a single channel into one CycleResult. The
//     cycle completes exactly when every session has resolved; a failing
//     feed never blocks or fails the cycle.
//   - Controller drives one cycle at a time and exposes the merged
//     result, plus a watch loop that re-runs cycles on an interval.
//
// All merging is confined to the single goroutine draining the outcome
// channel, so the accumulator needs no locks.
package collector
