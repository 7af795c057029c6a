// Package domain defines the core domain models for CarFlow.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - Sighting: A single observed vehicle (timestamp, brand, color)
//   - FeedAddress: A (host, port) pair identifying a feed server
//   - Outcome: The terminal result of one feed session
//   - CycleResult: The running and final state of one aggregate cycle
//   - Errors: Domain-specific error definitions
package domain
