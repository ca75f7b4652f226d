package service

import (
	"context"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the authenticated session of the dashboard.
// It is the only component that writes the access token; every other
// service reads it through Token right before issuing a request.
type ClientSessionService interface {
	// Login exchanges email and password for a token, confirms the profile
	// via /me and persists the token locally.
	// Returns ErrWrongCredentials when the server rejects the credentials.
	Login(ctx context.Context, email, password string) error

	// Register creates the account and logs in with the same credentials.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Logout clears the in-memory session and the persisted token.
	Logout(ctx context.Context) error

	// Restore loads the persisted token and confirms it via /me. Any failure
	// clears the session; a missing token is not an error.
	Restore(ctx context.Context) error

	// Expire is the forced logout used when the server rejects the token.
	Expire(ctx context.Context)

	// IsAuthenticated reports whether a confirmed user is present.
	IsAuthenticated() bool

	// User returns the confirmed profile.
	User() (models.User, bool)

	// Token returns the current access token or "" when logged out.
	Token() string
}

// ClientOptimizationService submits validated EOQ and ROP parameters.
type ClientOptimizationService interface {
	// Optimize runs the EOQ calculation for the uploaded demand file.
	Optimize(ctx context.Context, params models.EOQParams) (models.OptimizationResult, error)

	// CalculateROP runs the reorder point calculation for the uploaded demand file.
	CalculateROP(ctx context.Context, params models.ROPParams) (models.OptimizationResult, error)
}

// ClientHistoryService reads and deletes past calculations of the current user.
type ClientHistoryService interface {
	// List returns the calculations, newest first.
	List(ctx context.Context) ([]models.HistoryRecord, error)

	// Delete removes one calculation by id.
	Delete(ctx context.Context, id int64) error
}
