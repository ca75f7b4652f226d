package http

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/charts"
	"github.com/MKhiriev/go-stock-dashboard/internal/config"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Клиентский адаптер против настоящего роутера dev-сервера.

func newAdapter(t *testing.T) (adapter.ServerAdapter, string) {
	t.Helper()

	srv := newTestServer(t)
	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	csvPath := filepath.Join(t.TempDir(), "vendas.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(flatCSV), 0o600))

	return a, csvPath
}

func signIn(t *testing.T, a adapter.ServerAdapter) string {
	t.Helper()
	ctx := context.Background()

	_, err := a.Register(ctx, models.RegisterRequest{Email: "ana@example.com", Password: "segredo123", FullName: "Ana Souza"})
	require.NoError(t, err)

	token, err := a.Login(ctx, "ana@example.com", "segredo123")
	require.NoError(t, err)
	return token.AccessToken
}

func TestAdapterE2E_LoginThenMe(t *testing.T) {
	a, _ := newAdapter(t)
	token := signIn(t, a)

	user, err := a.Me(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.FullName)
	assert.Equal(t, "Ana", user.FirstName())
}

func TestAdapterE2E_WrongPassword(t *testing.T) {
	a, _ := newAdapter(t)
	signIn(t, a)

	_, err := a.Login(context.Background(), "ana@example.com", "errada")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestAdapterE2E_OptimizeKPIs(t *testing.T) {
	a, csvPath := newAdapter(t)
	token := signIn(t, a)

	result, err := a.Optimize(context.Background(), token, models.EOQParams{OrderCost: 75, HoldingCost: 2, FilePath: csvPath})
	require.NoError(t, err)

	require.True(t, result.HasEOQ())
	kpis, ok := charts.KPIs(&result)
	require.True(t, ok)
	assert.InDelta(t, 948.683, kpis.OptimalQuantity, 1e-3)
	// round(12000 / 948,68) = 13
	assert.Equal(t, 13, kpis.OrdersPerYear)
}

func TestAdapterE2E_ROPServiceLevelFraction(t *testing.T) {
	a, csvPath := newAdapter(t)
	token := signIn(t, a)

	result, err := a.CalculateROP(context.Background(), token, models.ROPParams{LeadTime: 7, ServiceLevel: 99.9, FilePath: csvPath})
	require.NoError(t, err)

	require.True(t, result.HasROP())
	level, ok := result.ServiceLevelPercent()
	require.True(t, ok)
	assert.InDelta(t, 99.9, level, 1e-9)
}

func TestAdapterE2E_DeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	a, csvPath := newAdapter(t)
	token := signIn(t, a)

	for i := 0; i < 7; i++ {
		_, err := a.Optimize(ctx, token, models.EOQParams{OrderCost: 75, HoldingCost: 2, FilePath: csvPath})
		require.NoError(t, err)
	}

	require.NoError(t, a.DeleteHistory(ctx, token, 5))

	records, err := a.History(ctx, token)
	require.NoError(t, err)

	var ids []int64
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{7, 6, 4, 3, 2, 1}, ids)

	err = a.DeleteHistory(ctx, token, 5)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
