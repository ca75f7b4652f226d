package devserver

import (
	"math"
	"testing"

	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatSeries(months int, sales float64) DemandSeries {
	s := DemandSeries{}
	for i := 0; i < months; i++ {
		s.Months = append(s.Months, "m")
		s.Sales = append(s.Sales, sales)
	}
	return s
}

func TestNormalQuantile(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.95, 1.6448536},
		{0.975, 1.9599640},
		{0.999, 3.0902323},
		{0.01, -2.3263479},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalQuantile(tt.p), 1e-6, "p=%v", tt.p)
	}

	assert.True(t, math.IsInf(NormalQuantile(0), -1))
	assert.True(t, math.IsInf(NormalQuantile(1), 1))
}

func TestForecast_LinearTrend(t *testing.T) {
	annual, r2 := Forecast(DemandSeries{Sales: []float64{10, 20, 30, 40}})

	// следующие 12 месяцев: 50, 60, ..., 160
	assert.InDelta(t, 1260, annual, 1e-9)
	assert.InDelta(t, 1, r2, 1e-12)
}

func TestForecast_Flat(t *testing.T) {
	annual, r2 := Forecast(flatSeries(12, 1000))
	assert.InDelta(t, 12000, annual, 1e-9)
	assert.Equal(t, 1.0, r2)
}

func TestForecast_NegativeMonthsClamped(t *testing.T) {
	annual, _ := Forecast(DemandSeries{Sales: []float64{40, 30, 20, 10}})
	assert.Zero(t, annual)
}

func TestCalculateEOQ(t *testing.T) {
	name := "Parafuso"
	result, err := CalculateEOQ(flatSeries(12, 1000), EOQInput{OrderCost: 75, HoldingCost: 2, ProductName: &name})
	require.NoError(t, err)

	q, ok := result.Quantity()
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(900000), q, 1e-9)

	cost, ok := result.TotalCost()
	require.True(t, ok)
	assert.InDelta(t, 2*math.Sqrt(900000), cost, 1e-9)

	require.NotNil(t, result.OrdersPerYear)
	assert.Equal(t, 13.0, math.Round(*result.OrdersPerYear))
	assert.Equal(t, models.CalculationEOQ, result.CalculationType)
	assert.Equal(t, &name, result.ProductName)
	assert.Equal(t, "1 - 900000/Q**2", *result.FirstDerivative)
	assert.Equal(t, "1800000/Q**3", *result.SecondDerivative)
	assert.False(t, result.HasROP())
}

func TestCalculateEOQ_WithLeadTime(t *testing.T) {
	lead := 7
	result, err := CalculateEOQ(flatSeries(12, 1000), EOQInput{OrderCost: 75, HoldingCost: 2, LeadTime: &lead})
	require.NoError(t, err)

	require.True(t, result.HasROP())
	assert.Equal(t, DefaultServiceLevel, *result.ServiceLevel)
	// без разброса спроса страховой запас нулевой
	assert.InDelta(t, 0, *result.SafetyStock, 1e-9)
	assert.InDelta(t, 12000.0/365*7, *result.ReorderPoint, 1e-9)
}

func TestCalculateEOQ_InvalidInput(t *testing.T) {
	_, err := CalculateEOQ(flatSeries(12, 1000), EOQInput{OrderCost: 0, HoldingCost: 2})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = CalculateEOQ(flatSeries(12, 1000), EOQInput{OrderCost: 75, HoldingCost: math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = CalculateEOQ(DemandSeries{Sales: []float64{40, 30, 20, 10}}, EOQInput{OrderCost: 75, HoldingCost: 2})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	lead := 400
	_, err = CalculateEOQ(flatSeries(12, 1000), EOQInput{OrderCost: 75, HoldingCost: 2, LeadTime: &lead})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestCalculateROP(t *testing.T) {
	series := DemandSeries{Sales: []float64{90, 110, 90, 110}}

	result, err := CalculateROP(series, ROPInput{LeadTime: 10, ServiceLevel: 0.95})
	require.NoError(t, err)

	daily := 400.0 / 365
	sigma := math.Sqrt(400.0/3) / math.Sqrt(30)
	ss := 1.6448536 * sigma * math.Sqrt(10)

	assert.Equal(t, models.CalculationROP, result.CalculationType)
	assert.Equal(t, 400.0, result.AnnualDemand)
	assert.InDelta(t, daily, *result.DailyDemand, 1e-12)
	assert.InDelta(t, ss, *result.SafetyStock, 1e-6)
	assert.InDelta(t, daily*10+ss, *result.ReorderPoint, 1e-6)
	assert.Equal(t, 10.0, *result.LeadTime)
	assert.False(t, result.HasEOQ())
}

func TestCalculateROP_Ranges(t *testing.T) {
	series := flatSeries(3, 10)
	for _, in := range []ROPInput{
		{LeadTime: 0, ServiceLevel: 0.95},
		{LeadTime: 366, ServiceLevel: 0.95},
		{LeadTime: 5, ServiceLevel: 0.49},
		{LeadTime: 5, ServiceLevel: 0.9995},
	} {
		_, err := CalculateROP(series, in)
		assert.ErrorIs(t, err, ErrInvalidParameters, "%+v", in)
	}

	_, err := CalculateROP(series, ROPInput{LeadTime: 365, ServiceLevel: 0.999})
	assert.NoError(t, err)
}
