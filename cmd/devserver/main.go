package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stock-dashboard/internal/config"
	"github.com/MKhiriev/go-stock-dashboard/internal/devserver"
	handler "github.com/MKhiriev/go-stock-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/server"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("stock-devserver")

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		log.Debug().Msgf(format, args...)
	})); err != nil {
		log.Warn().Err(err).Msg("GOMAXPROCS not adjusted")
	}

	if err := run(buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped with error")
	}
}

func run(buildInfo models.BuildInfo, log *logger.Logger) error {
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if buildVersion != "" {
		cfg.Version = buildInfo.Version
	}

	log.Info().
		Str("address", cfg.HTTPAddress).
		Str("version", cfg.Version).
		Dur("token_duration", cfg.TokenDuration).
		Msg("received configs")

	backend := devserver.NewBackend(cfg, log)
	router := handler.NewHandler(backend, cfg.Version, log).Init(cfg.RequestTimeout)

	srv, err := server.NewServer(router, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return srv.Run(ctx)
}
