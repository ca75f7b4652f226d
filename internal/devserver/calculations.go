// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"fmt"
	"math"
	"strconv"

	"github.com/MKhiriev/go-stock-dashboard/internal/charts"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

const (
	// ForecastMethod is reported in "metodo_previsao".
	ForecastMethod = "Regressão linear (mínimos quadrados)"

	forecastMonths = 12
	daysPerYear    = 365
	daysPerMonth   = 30

	DefaultServiceLevel = 0.95
	MinServiceLevel     = 0.5
	MaxServiceLevel     = 0.999
	MinLeadTime         = 1
	MaxLeadTime         = 365
)

// EOQInput are the parameters of POST /api/optimize besides the CSV file.
type EOQInput struct {
	OrderCost    float64
	HoldingCost  float64
	LeadTime     *int
	ServiceLevel float64
	ProductName  *string
}

// ROPInput are the parameters of POST /api/calculate-rop besides the CSV file.
type ROPInput struct {
	LeadTime     int
	ServiceLevel float64
	ProductName  *string
}

// Forecast fits a least-squares line to the monthly sales and sums its
// projection over the next twelve months, clamping negative months to zero.
// r2 is the coefficient of determination of the fit.
func Forecast(series DemandSeries) (annual, r2 float64) {
	n := float64(len(series.Sales))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series.Sales {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	for m := 0; m < forecastMonths; m++ {
		annual += math.Max(0, intercept+slope*(n+float64(m)))
	}

	mean := sumY / n
	var ssRes, ssTot float64
	for i, y := range series.Sales {
		predicted := intercept + slope*float64(i)
		ssRes += (y - predicted) * (y - predicted)
		ssTot += (y - mean) * (y - mean)
	}
	switch {
	case ssTot > 0:
		r2 = 1 - ssRes/ssTot
	case ssRes == 0:
		r2 = 1
	}

	return annual, r2
}

// CalculateEOQ forecasts the annual demand and solves the EOQ model for it.
// When a lead time is given the reorder point is computed as well.
func CalculateEOQ(series DemandSeries, in EOQInput) (models.OptimizationResult, error) {
	if !(in.OrderCost > 0) || !(in.HoldingCost > 0) {
		return models.OptimizationResult{}, fmt.Errorf("%w: custos devem ser maiores que zero", ErrInvalidParameters)
	}

	annual, r2 := Forecast(series)
	if !(annual > 0) {
		return models.OptimizationResult{}, fmt.Errorf("%w: a demanda prevista não é positiva", ErrInvalidParameters)
	}

	d, s, h := annual, in.OrderCost, in.HoldingCost
	q := charts.OptimalQuantity(d, s, h)
	cost := charts.TotalCost(d, s, h, q)
	orders := d / q
	daily := d / daysPerYear

	result := models.OptimizationResult{
		CalculationType:  models.CalculationEOQ,
		ProductName:      in.ProductName,
		OrderCost:        s,
		HoldingCost:      h,
		AnnualDemand:     d,
		OptimalQuantity:  &q,
		MinimumTotalCost: &cost,
		OrdersPerYear:    &orders,
		ForecastMethod:   ForecastMethod,
		R2Score:          &r2,
		DailyDemand:      &daily,
		FirstDerivative:  ptr(fmt.Sprintf("%s - %s/Q**2", formatTerm(h/2), formatTerm(d*s))),
		SecondDerivative: ptr(fmt.Sprintf("%s/Q**3", formatTerm(2*d*s))),
	}

	if in.LeadTime != nil {
		level := in.ServiceLevel
		if level == 0 {
			level = DefaultServiceLevel
		}
		if err := checkROPRange(*in.LeadTime, level); err != nil {
			return models.OptimizationResult{}, err
		}
		rop, ss := reorderPoint(series, daily, *in.LeadTime, level)
		lead := float64(*in.LeadTime)
		result.ReorderPoint = &rop
		result.SafetyStock = &ss
		result.LeadTime = &lead
		result.ServiceLevel = &level
	}

	return result, nil
}

// CalculateROP computes the reorder point from the observed demand. The annual
// demand is the plain sum of the history, without forecasting.
func CalculateROP(series DemandSeries, in ROPInput) (models.OptimizationResult, error) {
	if err := checkROPRange(in.LeadTime, in.ServiceLevel); err != nil {
		return models.OptimizationResult{}, err
	}

	annual := series.Total()
	daily := annual / daysPerYear
	rop, ss := reorderPoint(series, daily, in.LeadTime, in.ServiceLevel)
	lead := float64(in.LeadTime)
	level := in.ServiceLevel

	return models.OptimizationResult{
		CalculationType: models.CalculationROP,
		ProductName:     in.ProductName,
		AnnualDemand:    annual,
		DailyDemand:     &daily,
		LeadTime:        &lead,
		ServiceLevel:    &level,
		SafetyStock:     &ss,
		ReorderPoint:    &rop,
	}, nil
}

func checkROPRange(leadTime int, level float64) error {
	if leadTime < MinLeadTime || leadTime > MaxLeadTime {
		return fmt.Errorf("%w: lead time deve estar entre %d e %d dias", ErrInvalidParameters, MinLeadTime, MaxLeadTime)
	}
	if level < MinServiceLevel || level > MaxServiceLevel {
		return fmt.Errorf("%w: nível de serviço deve estar entre %v e %v", ErrInvalidParameters, MinServiceLevel, MaxServiceLevel)
	}
	return nil
}

// reorderPoint returns ROP = d·L + SS with SS = z·σd·sqrt(L), where σd is the
// monthly sample deviation scaled to a day.
func reorderPoint(series DemandSeries, daily float64, leadTime int, level float64) (rop, safetyStock float64) {
	sigma := sampleStdDev(series.Sales) / math.Sqrt(daysPerMonth)
	l := float64(leadTime)
	safetyStock = NormalQuantile(level) * sigma * math.Sqrt(l)
	return daily*l + safetyStock, safetyStock
}

func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// Coefficients of Acklam's rational approximation of the inverse normal CDF.
var (
	quantileA = [...]float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02, 1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	quantileB = [...]float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02, 6.680131188771972e+01, -1.328068155288572e+01}
	quantileC = [...]float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00, -2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	quantileD = [...]float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00, 3.754408661907416e+00}
)

// NormalQuantile returns z such that P(Z <= z) = p for a standard normal Z.
// The relative error is below 1.2e-9 on (0, 1).
func NormalQuantile(p float64) float64 {
	const low = 0.02425
	a, b, c, d := quantileA, quantileB, quantileC, quantileD

	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	case p < low:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p > 1-low:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}

func formatTerm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ptr[T any](v T) *T {
	return &v
}
