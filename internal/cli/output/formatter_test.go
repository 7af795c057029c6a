// Package output provides output formatting for carflow-collector.
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

func sampleResult() *domain.CycleResult {
	r := domain.NewCycleResult("cfcy-01hqv1234567890abcdefghijk", 2)
	r.Absorb(domain.SuccessOutcome(
		domain.FeedAddress{Host: "localhost", Port: 8000},
		"cfsn-a",
		[]domain.Sighting{
			{Timestamp: "t1", Brand: "peugeot", Color: "red"},
			{Timestamp: "t2", Brand: "renault", Color: "blue"},
		}))
	r.Absorb(domain.FailureOutcome(
		domain.FeedAddress{Host: "localhost", Port: 8001},
		"cfsn-b",
		domain.ErrTransport))
	return r
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("json format should yield a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatTable).(*TableFormatter); !ok {
		t.Error("table format should yield a TableFormatter")
	}
	if _, ok := NewFormatter(Format("bogus")).(*TableFormatter); !ok {
		t.Error("unknown format should fall back to table")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sampleResult()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var out struct {
		CycleID  string `json:"cycle_id"`
		Resolved int    `json:"resolved"`
		Records  []struct {
			Brand string `json:"brand"`
		} `json:"records"`
		Failures []struct {
			Address string `json:"address"`
			Error   string `json:"error"`
		} `json:"failures"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if out.Resolved != 2 {
		t.Errorf("resolved = %d, want 2", out.Resolved)
	}
	if len(out.Records) != 2 || out.Records[0].Brand != "peugeot" {
		t.Errorf("records = %+v", out.Records)
	}
	if len(out.Failures) != 1 || out.Failures[0].Address != "localhost:8001" {
		t.Errorf("failures = %+v", out.Failures)
	}
}

func TestJSONFormatterEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, domain.NewCycleResult("cfcy-x", 0)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(buf.String(), `"records": null`) {
		t.Error("empty record list should serialize as [], not null")
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, sampleResult()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"TIMESTAMP", "peugeot", "renault", "2 record(s) from 1/2 feed(s)", "localhost:8001"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
