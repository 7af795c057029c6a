package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/carflow-go/internal/collector/config"
	"github.com/yndnr/carflow-go/internal/infra/buildinfo"
	"github.com/yndnr/carflow-go/internal/infra/confloader"
	"github.com/yndnr/carflow-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "carflow-collector",
		Usage:   "Collect car sightings from CarFlow feed servers",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			CollectCommand(),
			WatchCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			EnvVars: []string{"CARFLOW_CONFIG"},
		},
		&cli.StringSliceFlag{
			Name:    "addr",
			Aliases: []string{"a"},
			Usage:   "Feed address (host:port), repeatable; overrides the configured feed list",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-session timeout (0 disables)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: json, text",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
	}
}

// loadConfig builds the effective collector configuration from
// defaults, file, environment, and flags (highest priority last).
func loadConfig(c *cli.Context) (*config.CollectorConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	overrides := map[string]any{}
	if c.IsSet("addr") {
		overrides["collector.feeds"] = c.StringSlice("addr")
	}
	if c.IsSet("timeout") {
		overrides["collector.timeout"] = c.Duration("timeout").String()
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, fmt.Errorf("apply flags: %w", err)
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogger initializes the structured logger from configuration and
// installs it as the process default.
func initLogger(cfg *config.CollectorConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}
