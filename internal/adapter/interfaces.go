// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the inventory-optimization
// API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from HTTP. The adapter is stateless with respect to authentication: the
// bearer token is passed to every protected call by the caller, so the only
// owner of the token is the session service.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] wrapping
// one of the sentinel values defined in errors.go, so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404) and still
// show the server's own message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the inventory-optimization API.
type ServerAdapter interface {
	// Login exchanges email and password for an access token
	// (POST /api/auth/login, form-encoded).
	Login(ctx context.Context, email, password string) (models.Token, error)

	// Register creates an account (POST /api/auth/register) and returns the
	// created user. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Me returns the profile of the token owner (GET /api/auth/me).
	Me(ctx context.Context, token string) (models.User, error)

	// Optimize uploads the demand CSV with cost parameters and returns the EOQ
	// result (POST /api/optimize, multipart).
	Optimize(ctx context.Context, token string, params models.EOQParams) (models.OptimizationResult, error)

	// CalculateROP uploads the demand CSV with lead time and service level and
	// returns the ROP result (POST /api/calculate-rop, multipart).
	CalculateROP(ctx context.Context, token string, params models.ROPParams) (models.OptimizationResult, error)

	// History lists the calculations of the token owner, newest first
	// (GET /api/history).
	History(ctx context.Context, token string) ([]models.HistoryRecord, error)

	// DeleteHistory deletes one calculation (DELETE /api/history/{id}).
	// Returns [ErrNotFound] (wrapped) if it does not exist or is not owned by
	// the token owner.
	DeleteHistory(ctx context.Context, token string, id int64) error
}
