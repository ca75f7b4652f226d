package http

import (
	"github.com/MKhiriev/go-stock-dashboard/internal/devserver"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
)

type Handler struct {
	backend *devserver.Backend
	version string

	logger *logger.Logger
}

func NewHandler(backend *devserver.Backend, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend: backend,
		version: version,
		logger:  logger,
	}
}
