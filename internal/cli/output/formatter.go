// Package output provides output formatting for carflow-collector.
package output

import (
	"io"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Formatter renders a completed cycle result for terminal output.
type Formatter interface {
	Format(w io.Writer, result *domain.CycleResult) error
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &TableFormatter{}
	}
}
