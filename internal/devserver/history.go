package devserver

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

type calculation struct {
	userID int64
	result models.OptimizationResult
}

// historyStore keeps saved calculations in memory. Identifiers are global and
// never reused, like database serials.
type historyStore struct {
	mu     sync.RWMutex
	items  []calculation
	nextID int64
	now    func() time.Time
}

func newHistoryStore(now func() time.Time) *historyStore {
	return &historyStore{now: now}
}

// add stores result for userID and returns it with its id and timestamp.
func (s *historyStore) add(ctx context.Context, userID int64, result models.OptimizationResult) models.OptimizationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	result.ID = &id
	result.CalculatedAt = &models.Timestamp{Time: s.now()}

	s.items = append(s.items, calculation{userID: userID, result: result})
	return result
}

// list returns the calculations of userID, newest first.
func (s *historyStore) list(ctx context.Context, userID int64) []models.OptimizationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.OptimizationResult, 0)
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].userID == userID {
			out = append(out, s.items[i].result)
		}
	}
	return out
}

// remove deletes calculation id if it belongs to userID.
func (s *historyStore) remove(ctx context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(c calculation) bool {
		return c.userID == userID && c.result.ID != nil && *c.result.ID == id
	})
	if idx < 0 {
		return ErrCalculationNotFound
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	return nil
}

// get returns calculation id if it belongs to userID.
func (s *historyStore) get(ctx context.Context, userID, id int64) (models.OptimizationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.items {
		if c.userID == userID && c.result.ID != nil && *c.result.ID == id {
			return c.result, nil
		}
	}
	return models.OptimizationResult{}, ErrCalculationNotFound
}
