package service

import (
	"context"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/validators"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

type clientHistoryService struct {
	session ClientSessionService
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientHistoryService(session ClientSessionService, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientHistoryService {
	return &clientHistoryService{session: session, adapter: serverAdapter, logger: logger}
}

func (s *clientHistoryService) List(ctx context.Context) ([]models.HistoryRecord, error) {
	token := s.session.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	records, err := s.adapter.History(ctx, token)
	if err != nil {
		return nil, mapAdapterError(ctx, s.session, err)
	}

	return records, nil
}

func (s *clientHistoryService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return validators.ErrInvalidHistoryID
	}

	token := s.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	if err := s.adapter.DeleteHistory(ctx, token, id); err != nil {
		return mapAdapterError(ctx, s.session, err)
	}

	s.logger.Info().Int64("history_id", id).Msg("history record deleted")
	return nil
}
