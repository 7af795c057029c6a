// Package feed implements the CarFlow feed server.
package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/core/wire"
)

func TestProducerPublishes(t *testing.T) {
	store := NewStore()
	p := NewProducer(store, nil, time.Millisecond, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for store.Len() < 3 {
		select {
		case <-deadline:
			cancel()
			t.Fatalf("producer published %d sightings, want at least 3", store.Len())
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}

	// Everything published must decode cleanly off the wire.
	if _, err := wire.Decode(wire.Encode(store.Snapshot())); err != nil {
		t.Errorf("published sightings do not round-trip: %v", err)
	}
}

func TestProducerDropsUnencodableSightings(t *testing.T) {
	store := NewStore()

	n := 0
	source := func() domain.Sighting {
		n++
		if n%2 == 0 {
			return domain.Sighting{Timestamp: "bad:token", Brand: "x", Color: "y"}
		}
		return domain.Sighting{Timestamp: "t", Brand: "peugeot", Color: "red"}
	}

	p := NewProducer(store, source, time.Millisecond, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = p.Run(ctx)

	for _, s := range store.Snapshot() {
		if err := wire.Validate(s); err != nil {
			t.Errorf("store contains unencodable sighting %q", s.String())
		}
	}
	if store.Len() == 0 {
		t.Error("valid sightings should still be published")
	}
}

func TestDefaultSourceIsEncodable(t *testing.T) {
	source := DefaultSource()
	for i := 0; i < 20; i++ {
		s := source()
		if err := wire.Validate(s); err != nil {
			t.Fatalf("DefaultSource produced unencodable sighting %q: %v", s.String(), err)
		}
	}
}
