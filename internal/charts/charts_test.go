package charts

import (
	"math"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

// eoqResult builds a consistent result for D=12000, S=75, H=2 (Q* = 948.68...).
func eoqResult() *models.OptimizationResult {
	d, s, h := 12000.0, 75.0, 2.0
	q := OptimalQuantity(d, s, h)
	cost := TotalCost(d, s, h, q)
	return &models.OptimizationResult{
		AnnualDemand:     d,
		OrderCost:        s,
		HoldingCost:      h,
		OptimalQuantity:  &q,
		MinimumTotalCost: &cost,
	}
}

func TestGenerators_IncompleteResultsAreEmpty(t *testing.T) {
	noQ := eoqResult()
	noQ.OptimalQuantity = nil

	zeroH := eoqResult()
	zeroH.HoldingCost = 0

	nanQ := eoqResult()
	nanQ.OptimalQuantity = ptrFloat(math.NaN())

	for name, r := range map[string]*models.OptimizationResult{
		"nil":          nil,
		"missing Q*":   noQ,
		"zero holding": zeroH,
		"NaN quantity": nanQ,
		"empty result": {},
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, CostCurve(r))
			assert.Empty(t, CostCurve(r))
			assert.Empty(t, Sensitivity(r))
			assert.Empty(t, StockProjection(r))
			_, ok := Breakdown(r)
			assert.False(t, ok)
			_, ok = KPIs(r)
			assert.False(t, ok)
		})
	}
}

func TestCostCurve_Shape(t *testing.T) {
	r := eoqResult()
	q, _ := r.Quantity()

	points := CostCurve(r)
	require.Len(t, points, CurveSteps+1)

	assert.InDelta(t, 0.3*q, points[0].Quantity, 1e-9)
	assert.InDelta(t, 2*q, points[len(points)-1].Quantity, 1e-9)

	for i, p := range points {
		assert.Equal(t, p.Ordering+p.Holding, p.Total, "point %d", i)
		if i > 0 {
			assert.Greater(t, p.Quantity, points[i-1].Quantity)
		}
	}
}

func TestCostCurve_OptimumMinimizes(t *testing.T) {
	r := eoqResult()
	q, _ := r.Quantity()
	optimum := TotalCost(r.AnnualDemand, r.OrderCost, r.HoldingCost, q)

	for _, p := range CostCurve(r) {
		assert.GreaterOrEqual(t, p.Total, optimum-1e-9)
	}
	// at Q* the two components are equal
	assert.InDelta(t, OrderingCost(r.AnnualDemand, r.OrderCost, q), HoldingCost(r.HoldingCost, q), 1e-9)
}

func TestCostCurve_Deterministic(t *testing.T) {
	r := eoqResult()
	assert.Equal(t, CostCurve(r), CostCurve(r))
}

func TestSensitivity(t *testing.T) {
	r := eoqResult()
	q, _ := r.Quantity()

	points := Sensitivity(r)
	require.Len(t, points, 9)

	assert.Equal(t, -40, points[0].Variation)
	assert.Equal(t, 40, points[8].Variation)
	assert.Equal(t, 0, points[4].Variation)
	assert.InDelta(t, q, points[4].Quantity, 1e-9)
	assert.InDelta(t, 0.6*r.AnnualDemand, points[0].Demand, 1e-9)

	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].Variation+SensitivityStep, points[i].Variation)
		assert.Greater(t, points[i].Quantity, points[i-1].Quantity)
	}
}

func TestStockProjection_Cycles(t *testing.T) {
	r := eoqResult()
	q, _ := r.Quantity()
	cycle, ok := CycleDays(r)
	require.True(t, ok)

	points := StockProjection(r)
	require.Len(t, points, Cycles*SamplesPerCycle)

	for c := 0; c < Cycles; c++ {
		first := points[c*SamplesPerCycle]
		last := points[(c+1)*SamplesPerCycle-1]

		assert.Equal(t, c, first.Cycle)
		assert.Equal(t, q, first.Stock, "cycle %d starts at Q*", c)
		assert.Equal(t, 0.0, last.Stock, "cycle %d reaches zero", c)
		assert.InDelta(t, float64(c)*cycle, first.Day, 1e-9)

		if c+1 < Cycles {
			next := points[(c+1)*SamplesPerCycle]
			assert.LessOrEqual(t, last.Day, next.Day+1e-9)
		}
	}

	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].Day, points[i-1].Day-1e-9)
	}
}

func TestStockProjection_Property(t *testing.T) {
	for _, tc := range []struct{ d, q float64 }{
		{1, 1}, {365, 10}, {12000, 948.68}, {1e6, 3}, {0.5, 1000},
	} {
		r := &models.OptimizationResult{AnnualDemand: tc.d, OrderCost: 1, HoldingCost: 1, OptimalQuantity: ptrFloat(tc.q)}
		points := StockProjection(r)
		require.Len(t, points, Cycles*SamplesPerCycle)
		for c := 0; c < Cycles; c++ {
			assert.Equal(t, tc.q, points[c*SamplesPerCycle].Stock)
			assert.Equal(t, 0.0, points[(c+1)*SamplesPerCycle-1].Stock)
		}
	}
}

func TestTotalCost(t *testing.T) {
	assert.InDelta(t, 12000.0*75/1000+2*1000.0/2, TotalCost(12000, 75, 2, 1000), 1e-9)
	assert.True(t, math.IsInf(TotalCost(12000, 75, 2, 0), 1))
}

func TestBreakdown(t *testing.T) {
	r := eoqResult()

	b, ok := Breakdown(r)
	require.True(t, ok)
	assert.InDelta(t, b.Ordering+b.Holding, b.Total, 1e-9)
	assert.InDelta(t, 0.5, b.OrderingShare, 1e-9)
	assert.InDelta(t, 1.0, b.OrderingShare+b.HoldingShare, 1e-12)

	// Q = D/2: 2 orders of 6000 units
	assert.InDelta(t, 2*75+2*6000/2.0, b.Baseline, 1e-9)
	assert.InDelta(t, b.Baseline-b.Total, b.Savings, 1e-9)
}

func TestKPIs(t *testing.T) {
	r := &models.OptimizationResult{
		AnnualDemand:     12000,
		OrderCost:        75,
		HoldingCost:      2,
		OptimalQuantity:  ptrFloat(300),
		MinimumTotalCost: ptrFloat(3300),
	}

	k, ok := KPIs(r)
	require.True(t, ok)
	assert.Equal(t, 40, k.OrdersPerYear)
	assert.InDelta(t, 80, k.Turnover, 1e-9)
	assert.InDelta(t, 150/(12000.0/365), k.DaysOfStock, 1e-9)
	assert.InDelta(t, 300/(12000.0/365), k.CycleDays, 1e-9)
	assert.Equal(t, 3300.0, k.MinimumTotalCost)
}

func TestKPIs_OrdersPerYearRounds(t *testing.T) {
	r := &models.OptimizationResult{AnnualDemand: 1000, OrderCost: 1, HoldingCost: 1, OptimalQuantity: ptrFloat(300), MinimumTotalCost: ptrFloat(1)}
	k, ok := KPIs(r)
	require.True(t, ok)
	assert.Equal(t, 3, k.OrdersPerYear)

	r.OptimalQuantity = ptrFloat(280)
	k, _ = KPIs(r)
	assert.Equal(t, 4, k.OrdersPerYear)
}

func TestKPIs_IncompleteCostInputs(t *testing.T) {
	for name, mutate := range map[string]func(r *models.OptimizationResult){
		"zero holding":        func(r *models.OptimizationResult) { r.HoldingCost = 0 },
		"zero order cost":     func(r *models.OptimizationResult) { r.OrderCost = 0 },
		"negative holding":    func(r *models.OptimizationResult) { r.HoldingCost = -2 },
		"infinite order cost": func(r *models.OptimizationResult) { r.OrderCost = math.Inf(1) },
	} {
		t.Run(name, func(t *testing.T) {
			r := eoqResult()
			mutate(r)

			_, ok := KPIs(r)
			assert.False(t, ok)
			assert.Empty(t, CostCurve(r))
		})
	}
}

func TestKPIs_OrdersPerYearOverflow(t *testing.T) {
	r := &models.OptimizationResult{
		AnnualDemand:     1e300,
		OrderCost:        1,
		HoldingCost:      1,
		OptimalQuantity:  ptrFloat(1e-300),
		MinimumTotalCost: ptrFloat(1),
	}

	k, ok := KPIs(r)
	assert.False(t, ok)
	assert.Zero(t, k.OrdersPerYear)
}

func TestKPIs_ROPOnlyResult(t *testing.T) {
	r := &models.OptimizationResult{AnnualDemand: 1000, ReorderPoint: ptrFloat(50)}
	_, ok := KPIs(r)
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	eoq := *eoqResult()
	rop := models.OptimizationResult{AnnualDemand: 1000, ReorderPoint: ptrFloat(50)}

	history := []models.HistoryRecord{
		{ID: 3, CalculatedAt: now.Add(-time.Hour), Result: eoq},
		{ID: 5, CalculatedAt: now, Result: rop},
		{ID: 4, CalculatedAt: now.Add(-2 * time.Hour), Result: eoq},
	}

	s := Summarize(history)
	assert.Equal(t, 3, s.TotalAnalyses)
	require.NotNil(t, s.Latest)
	assert.Equal(t, int64(5), s.Latest.ID)

	b, _ := Breakdown(&eoq)
	assert.InDelta(t, 2*b.Savings, s.EstimatedSavings, 1e-6)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalAnalyses)
	assert.Nil(t, s.Latest)
	assert.Zero(t, s.EstimatedSavings)
}
