package config

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func CreateCommand(runFunc func(ctx context.Context, cfg *Config) error) *cli.Command {
	return &cli.Command{
		Name:      "bstdump",
		Usage:     "build a binary search tree and print it in order",
		ArgsUsage: "[values...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `Location of a toml config file. Options given through the command
				line flags override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("BSTDUMP_CONFIG"),
			},

			&cli.StringSliceFlag{
				Name:    "insert",
				Aliases: []string{"i"},
				Usage:   "Values to insert, in order. Positional arguments are appended.",
			},

			&cli.StringSliceFlag{
				Name:    "remove",
				Aliases: []string{"r"},
				Usage:   "Values to remove after all insertions, in order.",
			},

			&cli.StringFlag{
				Name:      "kind",
				Usage:     "Element type, int or string (default: int)",
				Value:     KindInt,
				OnlyOnce:  true,
				Validator: validateKind,
			},

			&cli.StringFlag{
				Name:      "log-level",
				Usage:     "Log level (default: info)",
				Value:     "info",
				OnlyOnce:  true,
				Validator: validateLogLevel,
			},

			&cli.BoolFlag{
				Name:     "stats",
				Usage:    "Also print size, height, minimum and maximum",
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := defaultConfig()
			if p := cmd.String("config"); p != "" {
				c, err := FromTomlFile(p)
				if err != nil {
					return fmt.Errorf("error parsing toml config: %w", err)
				}
				cfg = c
			}
			mergeArgs(cfg, cmd)
			return runFunc(ctx, cfg)
		},
	}
}

// mergeArgs overrides cfg with every flag set on the command line. Positional
// arguments extend the insert list.
func mergeArgs(cfg *Config, cmd *cli.Command) {
	if cmd.IsSet("insert") {
		cfg.Insert = cmd.StringSlice("insert")
	}
	cfg.Insert = append(cfg.Insert, cmd.Args().Slice()...)
	if cmd.IsSet("remove") {
		cfg.Remove = cmd.StringSlice("remove")
	}
	if cmd.IsSet("kind") || cfg.Kind == "" {
		cfg.Kind = cmd.String("kind")
	}
	if cmd.IsSet("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("stats") {
		cfg.Stats = cmd.Bool("stats")
	}
}
