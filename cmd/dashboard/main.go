package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/client"
	"github.com/MKhiriev/go-stock-dashboard/internal/config"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/service"
	"github.com/MKhiriev/go-stock-dashboard/internal/store"
	"github.com/MKhiriev/go-stock-dashboard/internal/tui"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log, closeLog := logger.NewClientLogger("stock-dashboard", os.Getenv("DASHBOARD_LOG_DIR"))
	defer closeLog()

	if err := run(buildInfo, log); err != nil {
		log.Error().Err(err).Msg("dashboard stopped with error")
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func run(buildInfo models.BuildInfo, log *logger.Logger) error {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	return app.Run()
}
