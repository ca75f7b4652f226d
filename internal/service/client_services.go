package service

import (
	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/store"
)

type ClientServices struct {
	SessionService      ClientSessionService
	OptimizationService ClientOptimizationService
	HistoryService      ClientHistoryService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(storages.SessionRepository, serverAdapter, logger)
	optimizationSvc := NewOptimizationValidationService().
		Wrap(NewClientOptimizationService(sessionSvc, serverAdapter, logger))

	return &ClientServices{
		SessionService:      sessionSvc,
		OptimizationService: optimizationSvc,
		HistoryService:      NewClientHistoryService(sessionSvc, serverAdapter, logger),
	}
}
