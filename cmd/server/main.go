package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/davolkov/inventar/internal/config"
	"github.com/davolkov/inventar/internal/handler"
	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/internal/server"
	"github.com/davolkov/inventar/internal/service"
	"github.com/davolkov/inventar/internal/store"
	"github.com/davolkov/inventar/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inventar-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if cfg.Workers.SweepInterval > 0 {
		sweeper := workers.NewOrphanSweeper(
			storages.Items,
			storages.Photos,
			cfg.Workers.SweepInterval,
			cfg.Workers.SweepMinAge,
			log.GetChildLogger(),
		)
		workers.New(sweeper).Run(ctx)
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
