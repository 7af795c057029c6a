package benchmark

import (
	"fmt"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// RecordCounts defines the payload sizes for benchmarking.
var RecordCounts = []int{100, 1000, 10000, 100000}

var benchBrands = []string{"peugeot", "renault", "citroen", "fiat", "seat"}
var benchColors = []string{"red", "blue", "white", "black", "green"}

// makeSightings generates n deterministic sightings.
func makeSightings(n int) []domain.Sighting {
	sightings := make([]domain.Sighting, n)
	for i := 0; i < n; i++ {
		sightings[i] = domain.Sighting{
			Timestamp: fmt.Sprintf("t%d", i),
			Brand:     benchBrands[i%len(benchBrands)],
			Color:     benchColors[i%len(benchColors)],
		}
	}
	return sightings
}
