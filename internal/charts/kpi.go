package charts

import (
	"math"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

// CostBreakdown splits the minimum cost into its two components and compares
// it with ordering half of the yearly demand at a time.
type CostBreakdown struct {
	Ordering      float64
	Holding       float64
	Total         float64
	OrderingShare float64
	HoldingShare  float64

	// Baseline is the total cost at Q = D/2.
	Baseline float64
	// Savings is Baseline - Total, never negative.
	Savings float64
}

// Breakdown evaluates the cost components at Q*.
func Breakdown(r *models.OptimizationResult) (CostBreakdown, bool) {
	d, s, h, q, ok := inputs(r)
	if !ok {
		return CostBreakdown{}, false
	}

	ordering := OrderingCost(d, s, q)
	holding := HoldingCost(h, q)
	total := ordering + holding
	baseline := TotalCost(d, s, h, d/2)

	return CostBreakdown{
		Ordering:      ordering,
		Holding:       holding,
		Total:         total,
		OrderingShare: ordering / total,
		HoldingShare:  holding / total,
		Baseline:      baseline,
		Savings:       math.Max(0, baseline-total),
	}, true
}

// KPISet holds the headline indicators of a result.
type KPISet struct {
	OptimalQuantity  float64
	MinimumTotalCost float64
	// Turnover is D/(Q*/2), times per year the average stock is sold.
	Turnover float64
	// DaysOfStock is (Q*/2)/(D/365).
	DaysOfStock float64
	// OrdersPerYear is round(D/Q*).
	OrdersPerYear int
	// CycleDays is the time between two orders.
	CycleDays float64
}

// maxOrdersPerYear bounds round(D/Q*) so that it always fits an int.
const maxOrdersPerYear = math.MaxInt32

// KPIs computes the indicators shown on the result cards. Results without a
// displayable EOQ, or incomplete for the cost curve, have no KPIs.
func KPIs(r *models.OptimizationResult) (KPISet, bool) {
	if !r.HasEOQ() {
		return KPISet{}, false
	}
	d, _, _, q, ok := inputs(r)
	if !ok {
		return KPISet{}, false
	}
	cost, _ := r.TotalCost()

	orders := math.Round(d / q)
	if math.IsInf(orders, 0) || orders > maxOrdersPerYear {
		return KPISet{}, false
	}

	average := q / 2
	return KPISet{
		OptimalQuantity:  q,
		MinimumTotalCost: cost,
		Turnover:         d / average,
		DaysOfStock:      average / (d / daysPerYear),
		OrdersPerYear:    int(orders),
		CycleDays:        q / (d / daysPerYear),
	}, true
}

// Summary aggregates the calculation history for the dashboard cards.
type Summary struct {
	TotalAnalyses int
	// EstimatedSavings sums, over EOQ records, the cost at Q = D/2 minus the
	// minimum total cost.
	EstimatedSavings float64
	Latest           *models.HistoryRecord
}

// Summarize aggregates history. Records are not assumed to be sorted.
func Summarize(history []models.HistoryRecord) Summary {
	summary := Summary{TotalAnalyses: len(history)}

	for i := range history {
		record := &history[i]
		if summary.Latest == nil || record.CalculatedAt.After(summary.Latest.CalculatedAt) ||
			(record.CalculatedAt.Equal(summary.Latest.CalculatedAt) && record.ID > summary.Latest.ID) {
			summary.Latest = record
		}

		cost, ok := record.Result.TotalCost()
		if !ok || !record.Result.HasEOQ() {
			continue
		}
		d, s, h := record.Result.AnnualDemand, record.Result.OrderCost, record.Result.HoldingCost
		if !finitePositive(d) || !finitePositive(s) || !finitePositive(h) {
			continue
		}
		if saving := TotalCost(d, s, h, d/2) - cost; saving > 0 {
			summary.EstimatedSavings += saving
		}
	}

	return summary
}
