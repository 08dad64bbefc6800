package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eth2phone-gateway/internal/api"
	"github.com/MKhiriev/eth2phone-gateway/internal/config"
	"github.com/MKhiriev/eth2phone-gateway/internal/handler"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/observability"
	"github.com/MKhiriev/eth2phone-gateway/internal/server"
	"github.com/MKhiriev/eth2phone-gateway/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("eth2phone-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server_config", cfg.Server).Any("app_config", cfg.App).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	connector := store.NewConnector(cfg.Storage.DB, log)
	connector.ConnectInBackground(ctx)
	defer func() {
		if err := connector.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	var db api.Pinger
	if cfg.Storage.DB.DSN != "" {
		db = connector
	}

	handlers, err := handler.NewHandlers(api.NewRouter(cfg.App.Version, db, log), cfg.App, metrics, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, metrics, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
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
