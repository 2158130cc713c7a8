package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pedroganco/sanum/internal/app"
	"github.com/pedroganco/sanum/internal/cli"
	"github.com/pedroganco/sanum/internal/config"
	"github.com/pedroganco/sanum/internal/history"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetLoader(load)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func load(ctx context.Context, path string) (*cli.Services, error) {
	var (
		manager *config.Manager
		err     error
	)
	if path != "" {
		manager, err = config.NewManagerFromFile(path)
	} else {
		manager, err = config.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := manager.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := manager.GetConfig()
	// Logs go to stderr so --json output stays parseable.
	logger := config.NewLogger(cfg.Logging, os.Stderr)

	a, err := app.Build(ctx, cfg, logger, app.Options{})
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Markers:    a.Knowledge,
		Reports:    a.Reports,
		Scans:      a.Scans,
		Config:     cfg,
		ConfigFile: manager.ConfigFileUsed(),
		Migrations: func() (cli.Migrator, error) {
			runner, err := history.OpenMigrations(cfg.History, logger)
			if err != nil {
				return nil, err
			}
			return runner, nil
		},
		Close: a.Close,
	}, nil
}
