package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fantasy-stats-web/config"
	"fantasy-stats-web/di"
	"fantasy-stats-web/logging"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, the environment always wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[MAIN] Could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MAIN] Invalid configuration: %v", err)
	}
	logging.DefaultLogger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	logger := logging.For("Main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize container: %v", err)
		os.Exit(1)
	}

	if cfg.File != "" {
		if err := config.WatchNotices(ctx, cfg.File, container.Notices.Update); err != nil {
			logger.Warn("Notices will not reload: %v", err)
		}
	}

	logger.Info("Starting periodic recent leagues pruning")
	container.RecentLeaguesPrunerService.StartPeriodicJob(ctx, cfg.PruneInterval())

	if err := container.FantasyStatsHttpServer.Run(ctx); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
