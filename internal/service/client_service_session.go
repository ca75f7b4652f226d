package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/store"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

type clientSessionService struct {
	mu      sync.RWMutex
	session models.Session

	adapter  adapter.ServerAdapter
	sessions store.LocalSessionRepository
	logger   *logger.Logger
	now      func() time.Time
}

func NewClientSessionService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter:  serverAdapter,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) error {
	token, err := s.adapter.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return mapLoginError(err)
	}

	user, err := s.adapter.Me(ctx, token.AccessToken)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	savedAt := s.now()
	s.set(models.Session{Token: token.AccessToken, User: &user, SavedAt: savedAt})

	// the session stays usable for this run even if it cannot be persisted
	if err := s.sessions.Save(ctx, models.StoredSession{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		SavedAt:     savedAt,
	}); err != nil {
		s.logger.Err(err).Msg("failed to persist session")
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("logged in")
	return nil
}

func (s *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	if _, err := s.adapter.Register(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return s.Login(ctx, req.Email, req.Password)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.set(models.Session{})

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *clientSessionService) Expire(ctx context.Context) {
	if err := s.Logout(ctx); err != nil {
		s.logger.Err(err).Msg("forced logout")
		return
	}
	s.logger.Warn().Msg("session expired, logged out")
}

func (s *clientSessionService) Restore(ctx context.Context) error {
	stored, err := s.sessions.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load stored session: %w", err)
	}

	// opaque tokens skip the local check and go straight to /me
	if exp, err := utils.TokenExpiry(stored.AccessToken); err == nil && !exp.After(s.now()) {
		s.Expire(ctx)
		return ErrSessionExpired
	}

	user, err := s.adapter.Me(ctx, stored.AccessToken)
	if err != nil {
		s.Expire(ctx)
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return fmt.Errorf("restore session: %w", err)
	}

	s.set(models.Session{Token: stored.AccessToken, User: &user, SavedAt: stored.SavedAt})
	s.logger.Info().Int64("user_id", user.ID).Msg("session restored")
	return nil
}

func (s *clientSessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User != nil
}

func (s *clientSessionService) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return models.User{}, false
	}
	return *s.session.User, true
}

func (s *clientSessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *clientSessionService) set(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}
