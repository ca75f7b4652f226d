// Package devserver is the in-memory domain of the development backend: user
// accounts, access tokens, EOQ/ROP calculations and the calculation history.
// Nothing is persisted; restarting the process starts from an empty state.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/internal/config"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"golang.org/x/crypto/bcrypt"
)

const tokenTypeBearer = "bearer"

// Backend serves the dashboard API operations.
type Backend struct {
	users   *userStore
	history *historyStore

	signKey       string
	issuer        string
	tokenDuration time.Duration

	logger *logger.Logger
}

// Option customizes a Backend.
type Option func(*Backend)

// WithClock replaces the clock used to stamp saved calculations.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.history.now = now
	}
}

// WithBcryptCost sets the password hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(b *Backend) {
		b.users.cost = cost
	}
}

// NewBackend creates an empty backend that signs tokens with the key and
// issuer from cfg.
func NewBackend(cfg *config.ServerConfig, log *logger.Logger, opts ...Option) *Backend {
	b := &Backend{
		users:         newUserStore(bcrypt.DefaultCost),
		history:       newHistoryStore(time.Now),
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register creates an account. Emails are unique case-insensitively.
func (b *Backend) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	user, err := b.users.register(ctx, req)
	if err != nil {
		return models.User{}, err
	}

	b.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks the credentials and issues an access token embedding the
// user profile.
func (b *Backend) Login(ctx context.Context, email, password string) (models.Token, error) {
	user, err := b.users.authenticate(ctx, email, password)
	if err != nil {
		return models.Token{}, err
	}

	token, err := utils.GenerateJWTToken(b.issuer, user.ID, user.Email, b.tokenDuration, b.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}

	return models.Token{AccessToken: token, TokenType: tokenTypeBearer, User: &user}, nil
}

// ParseToken validates a bearer token and returns its user id.
func (b *Backend) ParseToken(token string) (int64, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, b.signKey, b.issuer)
	if err != nil {
		return 0, errors.Join(ErrInvalidToken, err)
	}
	return claims.UserID, nil
}

// Me returns the profile of userID.
func (b *Backend) Me(ctx context.Context, userID int64) (models.User, error) {
	return b.users.byUserID(ctx, userID)
}

// Optimize runs the EOQ calculation on an uploaded demand file and saves the
// result to the user's history.
func (b *Backend) Optimize(ctx context.Context, userID int64, filename string, content []byte, in EOQInput) (models.OptimizationResult, error) {
	series, err := readDemand(filename, content)
	if err != nil {
		return models.OptimizationResult{}, err
	}

	result, err := CalculateEOQ(series, in)
	if err != nil {
		return models.OptimizationResult{}, err
	}

	saved := b.history.add(ctx, userID, result)
	b.logger.Info().Int64("user_id", userID).Int64("calculation_id", *saved.ID).Msg("EOQ calculation saved")
	return saved, nil
}

// CalculateROP computes a reorder point. ROP-only results are not saved.
func (b *Backend) CalculateROP(ctx context.Context, userID int64, filename string, content []byte, in ROPInput) (models.OptimizationResult, error) {
	series, err := readDemand(filename, content)
	if err != nil {
		return models.OptimizationResult{}, err
	}
	return CalculateROP(series, in)
}

// History lists the calculations of userID, newest first.
func (b *Backend) History(ctx context.Context, userID int64) []models.OptimizationResult {
	return b.history.list(ctx, userID)
}

// Calculation returns one saved calculation of userID.
func (b *Backend) Calculation(ctx context.Context, userID, id int64) (models.OptimizationResult, error) {
	return b.history.get(ctx, userID, id)
}

// DeleteCalculation removes one calculation of userID. Calculations of other
// users are reported as not found.
func (b *Backend) DeleteCalculation(ctx context.Context, userID, id int64) error {
	if err := b.history.remove(ctx, userID, id); err != nil {
		return err
	}

	b.logger.Info().Int64("user_id", userID).Int64("calculation_id", id).Msg("calculation deleted")
	return nil
}

func readDemand(filename string, content []byte) (DemandSeries, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return DemandSeries{}, ErrNotCSV
	}
	return ParseDemandCSV(content)
}
