package tui

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/service"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

// historyCache is the last history list received from the backend. It is
// shared by the dashboard and history screens and refreshed after every
// successful calculation.
type historyCache struct {
	mu      sync.RWMutex
	svc     service.ClientHistoryService
	records []models.HistoryRecord
	logger  *logger.Logger
}

func newHistoryCache(svc service.ClientHistoryService, logger *logger.Logger) *historyCache {
	return &historyCache{svc: svc, logger: logger}
}

// refresh reloads the list. On failure the cached records are kept.
func (c *historyCache) refresh(ctx context.Context) ([]models.HistoryRecord, error) {
	records, err := c.svc.List(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("history refresh failed")
		return c.snapshot(), err
	}
	c.set(records)
	return c.snapshot(), nil
}

func (c *historyCache) set(records []models.HistoryRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = slices.Clone(records)
}

// remove drops exactly the record with id.
func (c *historyCache) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = slices.DeleteFunc(c.records, func(r models.HistoryRecord) bool {
		return r.ID == id
	})
}

func (c *historyCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
}

func (c *historyCache) snapshot() []models.HistoryRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.records)
}
