// Package domain defines the core domain models for CarFlow.
package domain

// Sighting represents one observed vehicle reported by a feed server.
//
// The timestamp is an opaque token assigned by the feed; the collector
// never parses it. A Sighting is immutable once constructed and compares
// structurally: two sightings are the same observation exactly when all
// three fields match.
type Sighting struct {
	// Timestamp is the feed-assigned observation time token.
	Timestamp string `json:"timestamp"`

	// Brand is the vehicle brand (e.g., "peugeot").
	Brand string `json:"brand"`

	// Color is the vehicle color (e.g., "red").
	Color string `json:"color"`
}

// Equal reports whether two sightings are structurally equal.
func (s Sighting) Equal(other Sighting) bool {
	return s.Timestamp == other.Timestamp &&
		s.Brand == other.Brand &&
		s.Color == other.Color
}

// String returns the sighting in its canonical timestamp:brand:color form.
func (s Sighting) String() string {
	return s.Timestamp + ":" + s.Brand + ":" + s.Color
}
