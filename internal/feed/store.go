// Package feed implements the CarFlow feed server.
package feed

import (
	"sync"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// Store is the append-only in-memory sighting list shared by the
// producer and the listener.
type Store struct {
	mu        sync.RWMutex
	sightings []domain.Sighting
}

// NewStore creates a store, optionally seeded with sightings.
func NewStore(seed ...domain.Sighting) *Store {
	s := &Store{}
	s.sightings = append(s.sightings, seed...)
	return s
}

// Append adds one sighting to the list.
func (s *Store) Append(sighting domain.Sighting) {
	s.mu.Lock()
	s.sightings = append(s.sightings, sighting)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current list. Connections encode the
// snapshot, so a concurrent append never tears a payload.
func (s *Store) Snapshot() []domain.Sighting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Sighting, len(s.sightings))
	copy(out, s.sightings)
	return out
}

// Len returns the current number of sightings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sightings)
}
