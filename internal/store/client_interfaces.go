package store

import (
	"context"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository persists the single authenticated session of the
// client between restarts.
type LocalSessionRepository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, session models.StoredSession) error
	// Load returns the stored session or [ErrLocalSessionNotFound].
	Load(ctx context.Context) (models.StoredSession, error)
	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
