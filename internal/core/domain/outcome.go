// Package domain defines the core domain models for CarFlow.
package domain

// Outcome is the terminal result of one feed session: either a decoded
// record list or an error, never both. Exactly one Outcome is produced
// per session.
type Outcome struct {
	// Address is the feed the session was connected to.
	Address FeedAddress

	// SessionID identifies the session that produced this outcome.
	SessionID string

	// Records holds the decoded sightings on success. Nil on failure.
	Records []Sighting

	// Err is the failure cause. Nil on success.
	Err error
}

// SuccessOutcome builds the outcome of a session whose payload decoded
// cleanly. An empty record list is still a success.
func SuccessOutcome(addr FeedAddress, sessionID string, records []Sighting) Outcome {
	return Outcome{
		Address:   addr,
		SessionID: sessionID,
		Records:   records,
	}
}

// FailureOutcome builds the outcome of a session that failed, either at
// the transport level or while decoding its payload.
func FailureOutcome(addr FeedAddress, sessionID string, err error) Outcome {
	return Outcome{
		Address:   addr,
		SessionID: sessionID,
		Err:       err,
	}
}

// Failed reports whether the session resolved with an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// FeedFailure records one failed session in a cycle result.
type FeedFailure struct {
	// Address is the feed whose session failed.
	Address FeedAddress `json:"address"`

	// Err is the failure cause.
	Err error `json:"-"`
}

// CycleResult is the running and final state of one aggregate cycle.
//
// It is mutated only by the single goroutine draining session outcomes;
// once Complete() returns true it is read-only.
type CycleResult struct {
	// CycleID identifies the aggregate cycle. Format: cfcy-{ulid}.
	CycleID string `json:"cycle_id"`

	// Expected is the number of sessions launched, fixed at creation.
	// Equals the length of the configured feed list, duplicates included.
	Expected int `json:"expected"`

	// Resolved is the number of sessions that reached a terminal
	// outcome so far, successes and failures both counted.
	Resolved int `json:"resolved"`

	// Records holds merged sightings from successful sessions in
	// outcome-arrival order. Cross-session order is arrival order,
	// not feed-list order.
	Records []Sighting `json:"records"`

	// Failures lists the failed sessions in outcome-arrival order.
	Failures []FeedFailure `json:"failures"`
}

// NewCycleResult creates the accumulator for one aggregate cycle over
// the given number of sessions.
func NewCycleResult(cycleID string, expected int) *CycleResult {
	return &CycleResult{
		CycleID:  cycleID,
		Expected: expected,
	}
}

// Absorb folds one session outcome into the result. Every outcome
// contributes to exactly one of Records or Failures, and advances
// Resolved by one. Callers must not absorb more than Expected outcomes.
func (r *CycleResult) Absorb(o Outcome) {
	if o.Failed() {
		r.Failures = append(r.Failures, FeedFailure{Address: o.Address, Err: o.Err})
	} else {
		r.Records = append(r.Records, o.Records...)
	}
	r.Resolved++
}

// Complete reports whether every launched session has resolved.
func (r *CycleResult) Complete() bool {
	return r.Resolved == r.Expected
}

// Succeeded returns the number of sessions that resolved successfully.
func (r *CycleResult) Succeeded() int {
	return r.Resolved - len(r.Failures)
}
