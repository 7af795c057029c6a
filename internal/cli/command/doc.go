// Package command provides CLI command definitions for carflow-collector.
//
// It uses urfave/cli/v2 for command parsing. The collector supports a
// one-shot collect mode and a continuous watch mode with configuration
// hot reload.
package command
