package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/g-m-twostay/ordtree/internal/applog"
	"github.com/g-m-twostay/ordtree/internal/config"
	"github.com/rs/zerolog"
)

func main() {
	cmd := config.CreateCommand(func(ctx context.Context, cfg *config.Config) error {
		logger := applog.NewLogger(cfg.Level(), os.Stderr)
		return run(ctx, cfg, os.Stdout, logger)
	})

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cfg *config.Config, w io.Writer, logger zerolog.Logger) error {
	logger = applog.WithScope(logger, "TREE")
	switch cfg.Kind {
	case config.KindString:
		return dump(cfg, Trees.NewOrdered[string](), func(s string) (string, error) { return s, nil }, w, logger)
	default:
		return dump(cfg, Trees.NewOrdered[int](), strconv.Atoi, w, logger)
	}
}

func dump[T any](cfg *config.Config, tree *Trees.BSTree[T], parse func(string) (T, error), w io.Writer, logger zerolog.Logger) error {
	for _, s := range cfg.Insert {
		v, err := parse(s)
		if err != nil {
			return fmt.Errorf("error parsing value %q: %w", s, err)
		}
		if !tree.InsertMove(&v) {
			logger.Debug().Str("value", s).Msg("duplicate ignored")
			continue
		}
		logger.Debug().Str("value", s).Msg("inserted")
	}

	for _, s := range cfg.Remove {
		v, err := parse(s)
		if err != nil {
			return fmt.Errorf("error parsing value %q: %w", s, err)
		}
		if !tree.Remove(v) {
			logger.Debug().Str("value", s).Msg("not found")
			continue
		}
		logger.Debug().Str("value", s).Msg("removed")
	}

	logger.Info().Uint("size", tree.Size()).Uint("height", tree.Height()).Msg("tree built")
	if err := tree.Print(w); err != nil {
		return err
	}
	if !cfg.Stats {
		return nil
	}

	fmt.Fprintf(w, "size: %d\nheight: %d\n", tree.Size(), tree.Height())
	if v, err := tree.Minimum(); err != nil {
		fmt.Fprintf(w, "min: %s\n", err)
	} else {
		fmt.Fprintf(w, "min: %v\n", v)
	}
	if v, err := tree.Maximum(); err != nil {
		fmt.Fprintf(w, "max: %s\n", err)
	} else {
		fmt.Fprintf(w, "max: %v\n", v)
	}
	return nil
}
