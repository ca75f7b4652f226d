package devserver

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const maxReorderAlerts = 5

// ReorderAlert points at a saved calculation that carries a reorder point.
type ReorderAlert struct {
	ID              int64   `json:"id"`
	ProductName     string  `json:"nome_produto"`
	ReorderPoint    float64 `json:"reorder_point"`
	OptimalQuantity float64 `json:"quantidade_otima"`
	CalculatedAt    string  `json:"data_calculo"`
}

// DashboardStats aggregates the saved calculations of a user.
type DashboardStats struct {
	TotalItems      int            `json:"total_itens"`
	TotalInvestment float64        `json:"investimento_total"`
	TotalAnnualCost float64        `json:"custo_anual_otimizado"`
	ReorderAlerts   []ReorderAlert `json:"alertas_reposicao"`
}

// Stats sums Q*·H and the minimum cost over the user's EOQ calculations and
// lists up to five of the newest calculations with a reorder point. Money
// amounts are rounded to cents.
func (b *Backend) Stats(ctx context.Context, userID int64) DashboardStats {
	history := b.history.list(ctx, userID)

	investment := decimal.Zero
	annualCost := decimal.Zero
	stats := DashboardStats{TotalItems: len(history), ReorderAlerts: []ReorderAlert{}}

	for _, r := range history {
		q, okQ := r.Quantity()
		if okQ {
			investment = investment.Add(decimal.NewFromFloat(q).Mul(decimal.NewFromFloat(r.HoldingCost)))
		}
		if cost, ok := r.TotalCost(); ok {
			annualCost = annualCost.Add(decimal.NewFromFloat(cost))
		}

		if !r.HasROP() || len(stats.ReorderAlerts) == maxReorderAlerts {
			continue
		}
		alert := ReorderAlert{
			ID:              *r.ID,
			ProductName:     fmt.Sprintf("Item #%d", *r.ID),
			ReorderPoint:    *r.ReorderPoint,
			OptimalQuantity: q,
		}
		if r.ProductName != nil && *r.ProductName != "" {
			alert.ProductName = *r.ProductName
		}
		if r.CalculatedAt != nil {
			alert.CalculatedAt = r.CalculatedAt.Format("2006-01-02T15:04:05")
		}
		stats.ReorderAlerts = append(stats.ReorderAlerts, alert)
	}

	stats.TotalInvestment = investment.Round(2).InexactFloat64()
	stats.TotalAnnualCost = annualCost.Round(2).InexactFloat64()
	return stats
}
