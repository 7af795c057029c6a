// Package output provides output formatting for carflow-collector.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// TableFormatter renders the cycle result as an aligned text table
// followed by a one-line summary.
type TableFormatter struct{}

// Format writes the result as a table.
func (f *TableFormatter) Format(w io.Writer, result *domain.CycleResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TIMESTAMP\tBRAND\tCOLOR")
	for _, rec := range result.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.Timestamp, rec.Brand, rec.Color)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d record(s) from %d/%d feed(s)\n",
		len(result.Records), result.Succeeded(), result.Expected)

	for _, fail := range result.Failures {
		fmt.Fprintf(w, "feed %s failed: %v\n", fail.Address.String(), fail.Err)
	}
	return nil
}
