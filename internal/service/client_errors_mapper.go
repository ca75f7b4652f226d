// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
)

// expirer is the part of the session service needed for a forced logout.
type expirer interface {
	Expire(ctx context.Context)
}

// mapAdapterError translates a transport error of a protected call into a
// service error. A 401 ends the session before the error is returned, so the
// rejected token is never sent again.
func mapAdapterError(ctx context.Context, session expirer, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		session.Expire(context.WithoutCancel(ctx))
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	return err
}

// mapLoginError distinguishes rejected credentials from other login failures.
func mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}

	return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
}
