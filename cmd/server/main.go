package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/handler"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/server"
	"github.com/MKhiriev/go-projects-api/internal/service"
	"github.com/MKhiriev/go-projects-api/internal/store"
	"github.com/MKhiriev/go-projects-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("projects-api")

	// a missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	if err = run(context.Background(), *cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run owns the storages, so they are closed on every return path before
// main decides the exit code.
func run(ctx context.Context, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if cfg.App.SeedDemoUser {
		if err = services.AuthService.SeedDemoUser(ctx); err != nil {
			return fmt.Errorf("error seeding demo user: %w", err)
		}
	}

	handlers, err := handler.NewHandlers(services, storages.Sessions, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	if err = handlers.HTTP.RegisterCollector(collectors.NewDBStatsCollector(storages.SQL(), "projects_api")); err != nil {
		return fmt.Errorf("error registering db stats collector: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
