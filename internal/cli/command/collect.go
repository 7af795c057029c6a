package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/carflow-go/internal/cli/output"
	"github.com/yndnr/carflow-go/internal/collector"
	"github.com/yndnr/carflow-go/internal/telemetry/metric"
)

// CollectCommand returns the collect command.
func CollectCommand() *cli.Command {
	return &cli.Command{
		Name:   "collect",
		Usage:  "Run a single collection cycle and print the merged records",
		Action: runCollect,
	}
}

func runCollect(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, err := initLogger(cfg)
	if err != nil {
		return err
	}

	ctrl := collector.New(cfg, log, metric.NewNopRegistry())

	result, err := ctrl.UpdateCars(c.Context)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(output.Format(c.String("output")))
	return formatter.Format(os.Stdout, result)
}
