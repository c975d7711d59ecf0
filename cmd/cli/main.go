package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/backuporganizer/internal/buildinfo"
	"github.com/dmitrijs2005/backuporganizer/internal/client/cli"
	"github.com/dmitrijs2005/backuporganizer/internal/client/config"
	"github.com/dmitrijs2005/backuporganizer/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger.Info(ctx, "client started", "api_url", cfg.APIBaseURL)
	app.Run(ctx)
}
