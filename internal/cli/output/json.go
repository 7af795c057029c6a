// Package output provides output formatting for carflow-collector.
package output

import (
	"encoding/json"
	"io"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// JSONFormatter renders the cycle result as indented JSON.
type JSONFormatter struct{}

// jsonFailure is the serializable form of a feed failure.
type jsonFailure struct {
	Address string `json:"address"`
	Error   string `json:"error"`
}

// jsonResult is the serializable form of a cycle result.
type jsonResult struct {
	CycleID  string            `json:"cycle_id"`
	Expected int               `json:"expected"`
	Resolved int               `json:"resolved"`
	Records  []domain.Sighting `json:"records"`
	Failures []jsonFailure     `json:"failures"`
}

// Format writes the result as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, result *domain.CycleResult) error {
	out := jsonResult{
		CycleID:  result.CycleID,
		Expected: result.Expected,
		Resolved: result.Resolved,
		Records:  result.Records,
		Failures: make([]jsonFailure, 0, len(result.Failures)),
	}
	if out.Records == nil {
		out.Records = []domain.Sighting{}
	}
	for _, fail := range result.Failures {
		out.Failures = append(out.Failures, jsonFailure{
			Address: fail.Address.String(),
			Error:   fail.Err.Error(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
