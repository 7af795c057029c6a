// Package main provides the entry point for carflow-feed.
//
// carflow-feed is a CarFlow feed server. It keeps an in-memory list
// of car sightings, appends a new sighting at a fixed interval, and
// serves the encoded list to every TCP client that connects.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/yndnr/carflow-go/internal/feed"
	"github.com/yndnr/carflow-go/internal/infra/buildinfo"
	"github.com/yndnr/carflow-go/internal/infra/confloader"
	"github.com/yndnr/carflow-go/internal/infra/shutdown"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		listenAddr  = flag.String("listen", "", "TCP listen address (overrides configuration)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("carflow-feed %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile, *listenAddr)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting carflow-feed",
		"version", buildinfo.Version,
		"listen", cfg.Feed.ListenAddr,
		"interval", cfg.Feed.ProducerInterval.String())

	metrics := metric.NewNopRegistry()
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		reg, promReg := metric.NewPrometheusRegistry()
		metrics = reg

		metricsServer = &http.Server{
			Addr:    cfg.Metrics.Addr,
			Handler: metric.Handler(promReg),
		}
		go func() {
			log.Info("metrics endpoint listening", "addr", cfg.Metrics.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server error", "error", err)
			}
		}()
	}

	store := feed.NewStore()
	producer := feed.NewProducer(store, feed.DefaultSource(), cfg.Feed.ProducerInterval, log, metrics)

	producerCtx, stopProducer := context.WithCancel(context.Background())
	go func() {
		if err := producer.Run(producerCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("producer stopped", "error", err)
		}
	}()

	server := feed.NewServer(cfg.Feed.ListenAddr, store, log, metrics)
	if err := server.Start(); err != nil {
		stopProducer()
		return fmt.Errorf("start server: %w", err)
	}
	log.Info("feed server listening", "addr", server.Addr())

	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("stopping producer")
		stopProducer()
		return nil
	})

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down feed server")
		return server.Close()
	})

	if metricsServer != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down metrics server")
			return metricsServer.Shutdown(ctx)
		})
	}

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("feed server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment, then
// applies any flag overrides.
func loadConfig(configFile, listenAddr string) (*feed.Config, error) {
	cfg := feed.DefaultConfig()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if listenAddr != "" {
		cfg.Feed.ListenAddr = listenAddr
	}

	if err := feed.VerifyConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and installs it as
// the process default.
func initLogger(cfg *feed.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}
