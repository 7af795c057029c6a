// Package wire implements the feed wire codec.
package wire

import (
	"fmt"
	"strings"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// Wire delimiters.
const (
	// FieldSeparator separates the three fields within a record.
	FieldSeparator = ":"

	// RecordSeparator separates records within a payload.
	RecordSeparator = "."
)

// recordFields is the number of fields in a well-formed record.
const recordFields = 3

// Encode encodes sightings into a wire payload. An empty list encodes
// to an empty payload. Fields are joined verbatim; callers feeding the
// encoder must keep delimiter characters out of field values (see
// Validate).
func Encode(records []domain.Sighting) []byte {
	if len(records) == 0 {
		return []byte{}
	}

	var b strings.Builder
	for i, rec := range records {
		if i > 0 {
			b.WriteString(RecordSeparator)
		}
		b.WriteString(rec.Timestamp)
		b.WriteString(FieldSeparator)
		b.WriteString(rec.Brand)
		b.WriteString(FieldSeparator)
		b.WriteString(rec.Color)
	}
	return []byte(b.String())
}

// Decode decodes a wire payload into sightings.
//
// An empty payload decodes to an empty list. Otherwise the payload is
// split on the record separator and every chunk must split into exactly
// three fields; anything else fails with ErrMalformedRecord
// (CF-WIRE-4000). A bare "." payload is therefore malformed: it splits
// into two empty chunks, neither of which is a record.
func Decode(payload []byte) ([]domain.Sighting, error) {
	if len(payload) == 0 {
		return []domain.Sighting{}, nil
	}

	chunks := strings.Split(string(payload), RecordSeparator)
	records := make([]domain.Sighting, 0, len(chunks))

	for i, chunk := range chunks {
		fields := strings.Split(chunk, FieldSeparator)
		if len(fields) != recordFields {
			return nil, domain.ErrMalformedRecord.WithDetails(
				fmt.Sprintf("record %d: %d field(s), want %d", i, len(fields), recordFields))
		}
		records = append(records, domain.Sighting{
			Timestamp: fields[0],
			Brand:     fields[1],
			Color:     fields[2],
		})
	}

	return records, nil
}

// Validate reports whether a sighting is safe to encode: none of its
// fields may contain a wire delimiter.
func Validate(s domain.Sighting) error {
	for _, field := range []string{s.Timestamp, s.Brand, s.Color} {
		if strings.Contains(field, FieldSeparator) || strings.Contains(field, RecordSeparator) {
			return domain.ErrMalformedRecord.WithDetails(
				fmt.Sprintf("field %q contains a wire delimiter", field))
		}
	}
	return nil
}
