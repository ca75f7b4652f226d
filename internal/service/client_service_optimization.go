package service

import (
	"context"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

type clientOptimizationService struct {
	session ClientSessionService
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientOptimizationService(session ClientSessionService, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientOptimizationService {
	return &clientOptimizationService{session: session, adapter: serverAdapter, logger: logger}
}

func (s *clientOptimizationService) Optimize(ctx context.Context, params models.EOQParams) (models.OptimizationResult, error) {
	token := s.session.Token()
	if token == "" {
		return models.OptimizationResult{}, ErrNotAuthenticated
	}

	result, err := s.adapter.Optimize(ctx, token, params)
	if err != nil {
		return models.OptimizationResult{}, mapAdapterError(ctx, s.session, err)
	}

	s.logger.Debug().Str("product", params.ProductName).Msg("EOQ calculated")
	return result, nil
}

func (s *clientOptimizationService) CalculateROP(ctx context.Context, params models.ROPParams) (models.OptimizationResult, error) {
	token := s.session.Token()
	if token == "" {
		return models.OptimizationResult{}, ErrNotAuthenticated
	}

	result, err := s.adapter.CalculateROP(ctx, token, params)
	if err != nil {
		return models.OptimizationResult{}, mapAdapterError(ctx, s.session, err)
	}

	s.logger.Debug().Str("product", params.ProductName).Msg("ROP calculated")
	return result, nil
}
