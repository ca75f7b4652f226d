package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] on db.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) Save(ctx context.Context, session models.StoredSession) error {
	if strings.TrimSpace(session.AccessToken) == "" {
		return ErrEmptySessionToken
	}
	if session.TokenType == "" {
		session.TokenType = "bearer"
	}

	query, args, err := saveSessionQuery(session.AccessToken, session.TokenType, session.SavedAt)
	if err != nil {
		return fmt.Errorf("failed to build save session query: %w", err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Save").
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (l *localSessionRepository) Load(ctx context.Context) (models.StoredSession, error) {
	query, args, err := loadSessionQuery()
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("failed to build load session query: %w", err)
	}

	var session models.StoredSession
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&session.AccessToken, &session.TokenType, &session.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Load").
			Msg("failed to load session")
		return models.StoredSession{}, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

func (l *localSessionRepository) Clear(ctx context.Context) error {
	query, args, err := clearSessionQuery()
	if err != nil {
		return fmt.Errorf("failed to build clear session query: %w", err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Clear").
			Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
