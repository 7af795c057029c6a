package command

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/carflow-go/internal/cli/output"
	"github.com/yndnr/carflow-go/internal/collector"
	"github.com/yndnr/carflow-go/internal/collector/config"
	"github.com/yndnr/carflow-go/internal/core/domain"
	"github.com/yndnr/carflow-go/internal/infra/confloader"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

// WatchCommand returns the watch command.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:   "watch",
		Usage:  "Run collection cycles continuously until interrupted",
		Action: runWatch,
	}
}

func runWatch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, err := initLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := metric.NewNopRegistry()
	if cfg.Metrics.Enabled {
		reg, promReg := metric.NewPrometheusRegistry()
		metrics = reg

		srv := &http.Server{
			Addr:    cfg.Metrics.Addr,
			Handler: metric.Handler(promReg),
		}
		go func() {
			log.Info("metrics endpoint listening", "addr", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	ctrl := collector.New(cfg, log, metrics)

	if path := c.String("config"); path != "" {
		watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
		if err != nil {
			return err
		}
		if err := watcher.Watch(path); err != nil {
			return err
		}
		watcher.OnChange(func(string) {
			fresh := config.Default()
			loader := confloader.NewLoader(confloader.WithConfigFile(path))
			if err := loader.Load(fresh); err != nil {
				log.Warn("config reload failed", "path", path, "error", err)
				return
			}
			if err := config.Verify(fresh); err != nil {
				log.Warn("reloaded config rejected", "path", path, "error", err)
				return
			}
			ctrl.Reload(fresh)
			log.Info("configuration reloaded", "path", path)
		})
		watcher.StartAsync()
		defer func() { _ = watcher.Stop() }()
	}

	formatter := output.NewFormatter(output.Format(c.String("output")))

	err = ctrl.Watch(ctx, func(result *domain.CycleResult) {
		if err := formatter.Format(os.Stdout, result); err != nil {
			log.Error("format cycle result", "error", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		log.Info("watch stopped")
		return nil
	}
	return err
}
