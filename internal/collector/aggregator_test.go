// Package collector implements the CarFlow fan-out/fan-in client.
package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

func TestAggregatorAllSucceed(t *testing.T) {
	addrs := []domain.FeedAddress{
		startStubFeed(t, "t1:peugeot:red", 0),
		startStubFeed(t, "t2:renault:blue.t3:citroen:green", 0),
		startStubFeed(t, "", 0),
	}

	agg := NewAggregator(time.Second, nil, nil)
	result := agg.Run(context.Background(), "cfcy-test", addrs)

	if !result.Complete() {
		t.Fatal("cycle should be complete")
	}
	if result.Resolved != 3 {
		t.Errorf("Resolved = %d, want 3", result.Resolved)
	}
	if len(result.Failures) != 0 {
		t.Errorf("Failures = %v, want none", result.Failures)
	}

	// Cross-session order is arrival order, so compare as a multiset.
	got := recordSet(result.Records)
	want := map[string]int{
		"t1:peugeot:red":   1,
		"t2:renault:blue":  1,
		"t3:citroen:green": 1,
	}
	if len(got) != len(want) {
		t.Fatalf("merged records = %v, want %v", got, want)
	}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("record %q count = %d, want %d", k, got[k], n)
		}
	}
}

func TestAggregatorPartialFailure(t *testing.T) {
	addrs := []domain.FeedAddress{
		startStubFeed(t, "t1:peugeot:red", 0),
		refusedFeedAddr(t),
		startStubFeed(t, "t2:renault:blue", 0),
		refusedFeedAddr(t),
	}

	agg := NewAggregator(time.Second, nil, nil)
	result := agg.Run(context.Background(), "cfcy-test", addrs)

	if !result.Complete() {
		t.Fatal("cycle must complete despite failed feeds")
	}
	if result.Resolved != 4 {
		t.Errorf("Resolved = %d, want 4", result.Resolved)
	}
	if len(result.Failures) != 2 {
		t.Errorf("len(Failures) = %d, want 2", len(result.Failures))
	}
	if len(result.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2 (only successful feeds)", len(result.Records))
	}
	for _, f := range result.Failures {
		if !errors.Is(f.Err, domain.ErrTransport) {
			t.Errorf("failure error = %v, want ErrTransport", f.Err)
		}
	}
}

func TestAggregatorEmptyAddressList(t *testing.T) {
	agg := NewAggregator(time.Second, nil, nil)

	done := make(chan *domain.CycleResult, 1)
	go func() {
		done <- agg.Run(context.Background(), "cfcy-test", nil)
	}()

	select {
	case result := <-done:
		if !result.Complete() {
			t.Error("empty address list should complete immediately")
		}
		if len(result.Records) != 0 || len(result.Failures) != 0 {
			t.Error("empty cycle should have no records and no failures")
		}
	case <-time.After(time.Second):
		t.Fatal("empty address list should not block")
	}
}

func TestAggregatorDuplicateAddresses(t *testing.T) {
	addr := startStubFeed(t, "t1:peugeot:red", 0)
	addrs := []domain.FeedAddress{addr, addr}

	agg := NewAggregator(time.Second, nil, nil)
	result := agg.Run(context.Background(), "cfcy-test", addrs)

	if result.Expected != 2 {
		t.Errorf("Expected = %d, want 2 (each duplicate is a session)", result.Expected)
	}
	if result.Resolved != 2 {
		t.Errorf("Resolved = %d, want 2", result.Resolved)
	}
	if got := recordSet(result.Records)["t1:peugeot:red"]; got != 2 {
		t.Errorf("duplicate feed record count = %d, want 2", got)
	}
}

func TestAggregatorMalformedFeedCountsAsFailure(t *testing.T) {
	addrs := []domain.FeedAddress{
		startStubFeed(t, "not-a-record", 0),
		startStubFeed(t, "t1:peugeot:red", 0),
	}

	agg := NewAggregator(time.Second, nil, nil)
	result := agg.Run(context.Background(), "cfcy-test", addrs)

	if !result.Complete() {
		t.Fatal("cycle should complete")
	}
	if len(result.Failures) != 1 {
		t.Fatalf("len(Failures) = %d, want 1", len(result.Failures))
	}
	if !errors.Is(result.Failures[0].Err, domain.ErrMalformedRecord) {
		t.Errorf("failure error = %v, want ErrMalformedRecord", result.Failures[0].Err)
	}
	if len(result.Records) != 1 {
		t.Errorf("len(Records) = %d, want 1", len(result.Records))
	}
}

func TestAggregatorTimeoutFeedDoesNotStallCycle(t *testing.T) {
	addrs := []domain.FeedAddress{
		startHangingFeed(t),
		startStubFeed(t, "t1:peugeot:red", 0),
	}

	agg := NewAggregator(200*time.Millisecond, nil, nil)

	done := make(chan *domain.CycleResult, 1)
	go func() {
		done <- agg.Run(context.Background(), "cfcy-test", addrs)
	}()

	select {
	case result := <-done:
		if result.Resolved != 2 {
			t.Errorf("Resolved = %d, want 2", result.Resolved)
		}
		if len(result.Failures) != 1 {
			t.Fatalf("len(Failures) = %d, want 1", len(result.Failures))
		}
		if !errors.Is(result.Failures[0].Err, domain.ErrSessionTimeout) {
			t.Errorf("failure error = %v, want ErrSessionTimeout", result.Failures[0].Err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("hung feed stalled the cycle past its timeout")
	}
}

func TestAggregatorRecordsMetrics(t *testing.T) {
	reg, promReg := metric.NewPrometheusRegistry()
	addrs := []domain.FeedAddress{
		startStubFeed(t, "t1:peugeot:red.t2:renault:blue", 0),
		refusedFeedAddr(t),
	}

	agg := NewAggregator(time.Second, nil, reg)
	agg.Run(context.Background(), "cfcy-test", addrs)

	families, err := promReg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := make(map[string]bool)
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	for _, name := range []string{"carflow_sessions_total", "carflow_records_merged_total"} {
		if !found[name] {
			t.Errorf("metric %q not collected", name)
		}
	}
}

func TestOutcomeLabel(t *testing.T) {
	addr := domain.FeedAddress{Host: "h", Port: 1}

	tests := []struct {
		name    string
		outcome domain.Outcome
		want    string
	}{
		{"success", domain.SuccessOutcome(addr, "s", nil), metric.OutcomeSuccess},
		{"timeout", domain.FailureOutcome(addr, "s", domain.ErrSessionTimeout), metric.OutcomeTimeout},
		{"malformed", domain.FailureOutcome(addr, "s", domain.ErrMalformedRecord), metric.OutcomeMalformed},
		{"transport", domain.FailureOutcome(addr, "s", domain.ErrTransport), metric.OutcomeTransport},
		{"unclassified", domain.FailureOutcome(addr, "s", errors.New("boom")), metric.OutcomeTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcomeLabel(tt.outcome); got != tt.want {
				t.Errorf("outcomeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
