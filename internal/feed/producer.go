// Package feed implements the CarFlow feed server.
package feed

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/core/wire"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

// Source yields the next sighting to publish.
type Source func() domain.Sighting

// Producer appends new sightings to a store at a configured pace.
type Producer struct {
	store   *Store
	source  Source
	limiter *rate.Limiter
	log     logger.Logger
	metrics *metric.Registry
}

// NewProducer creates a producer that emits one sighting per interval.
// A nil source falls back to DefaultSource; a nil metrics registry
// falls back to the nop implementation.
func NewProducer(store *Store, source Source, interval time.Duration, log logger.Logger, metrics *metric.Registry) *Producer {
	if source == nil {
		source = DefaultSource()
	}
	if log == nil {
		log = logger.Default()
	}
	if metrics == nil {
		metrics = metric.NewNopRegistry()
	}
	return &Producer{
		store:   store,
		source:  source,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		log:     log,
		metrics: metrics,
	}
}

// Run publishes sightings until the context is cancelled. Sightings
// whose fields contain wire delimiters are dropped with a warning, not
// published; letting them through would corrupt every payload the
// listener writes afterwards.
func (p *Producer) Run(ctx context.Context) error {
	p.log.Info("sighting producer started")

	for {
		if err := p.limiter.Wait(ctx); err != nil {
			p.log.Info("sighting producer stopped")
			return err
		}

		sighting := p.source()
		if err := wire.Validate(sighting); err != nil {
			p.log.Warn("dropping unencodable sighting",
				"sighting", sighting.String(),
				"error", err)
			continue
		}

		p.store.Append(sighting)
		p.metrics.FeedSightings.Set(float64(p.store.Len()))
		p.log.Debug("sighting published", "sighting", sighting.String())
	}
}

// demo vehicles for the default source.
var (
	demoBrands = []string{"peugeot", "renault", "citroen", "fiat", "dacia"}
	demoColors = []string{"red", "blue", "green", "white", "black"}
)

// DefaultSource returns a source that fabricates sightings from a small
// brand/color table, stamped with a delimiter-free wall-clock token.
func DefaultSource() Source {
	n := 0
	return func() domain.Sighting {
		s := domain.Sighting{
			Timestamp: time.Now().UTC().Format("20060102T150405"),
			Brand:     demoBrands[n%len(demoBrands)],
			Color:     demoColors[n%len(demoColors)],
		}
		n++
		return s
	}
}
