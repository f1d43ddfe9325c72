package main

import (
	"context"
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/dolarasia/dolarasia/pkg/app"
	"github.com/dolarasia/dolarasia/pkg/config"
	"github.com/dolarasia/dolarasia/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := app.SetupLogger(cfg.Log)

	deps, err := app.InitDeps(context.Background(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"storage", cfg.Storage.Dir,
	)
	return fiberApp.Listen(addr)
}
