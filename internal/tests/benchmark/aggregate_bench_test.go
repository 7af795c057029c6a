package benchmark

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/yndnr/carflow-go/internal/collector"
	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/feed"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

// FeedCounts defines the fan-out widths for benchmarking.
var FeedCounts = []int{1, 4, 16, 64}

func benchLogger(b *testing.B) logger.Logger {
	b.Helper()

	log, err := logger.New(logger.Config{
		Level:  "error",
		Format: "text",
		Output: io.Discard,
	})
	if err != nil {
		b.Fatalf("create logger: %v", err)
	}
	return log
}

// BenchmarkAggregatorRun measures a full collection cycle against
// local feed servers, including dial, read, and decode.
func BenchmarkAggregatorRun(b *testing.B) {
	for _, feeds := range FeedCounts {
		b.Run(fmt.Sprintf("feeds_%d", feeds), func(b *testing.B) {
			log := benchLogger(b)
			sightings := makeSightings(100)

			addrs := make([]domain.FeedAddress, 0, feeds)
			for i := 0; i < feeds; i++ {
				store := feed.NewStore(sightings...)
				server := feed.NewServer("127.0.0.1:0", store, log, metric.NewNopRegistry())
				if err := server.Start(); err != nil {
					b.Fatalf("start feed server: %v", err)
				}
				b.Cleanup(func() { _ = server.Close() })

				addr, err := domain.ParseFeedAddress(server.Addr())
				if err != nil {
					b.Fatalf("parse address: %v", err)
				}
				addrs = append(addrs, addr)
			}

			agg := collector.NewAggregator(5*time.Second, log, metric.NewNopRegistry())
			ctx := context.Background()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				cycleID, err := domain.GenerateCycleID()
				if err != nil {
					b.Fatalf("generate cycle id: %v", err)
				}
				result := agg.Run(ctx, cycleID, addrs)
				if !result.Complete() {
					b.Fatalf("cycle not complete: %d of %d", result.Resolved, result.Expected)
				}
			}
		})
	}
}
