// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package charts derives chart series and KPIs from an optimization result.
//
// Every function is pure: the same result always yields the same series and
// nothing is mutated. A nil or incomplete result (no Q*, or a non-positive
// demand, order cost or holding cost) yields an empty series.
package charts

import (
	"math"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

const (
	// CurveSteps is the number of intervals of the cost curve; the curve has
	// CurveSteps+1 points.
	CurveSteps = 100
	// CurveFrom and CurveTo bound the cost curve as multiples of Q*.
	CurveFrom = 0.3
	CurveTo   = 2.0

	// SensitivityStep and SensitivityRange are demand variations in percent.
	SensitivityStep  = 10
	SensitivityRange = 40

	// Cycles is the number of replenishment cycles in the stock projection.
	Cycles = 3
	// SamplesPerCycle is the number of points drawn per cycle, from Q* down to 0.
	SamplesPerCycle = 10

	daysPerYear = 365
)

// CostPoint is one sample of the cost curve.
type CostPoint struct {
	Quantity float64
	Ordering float64
	Holding  float64
	Total    float64
}

// SensitivityPoint is the optimum recomputed for a varied demand.
type SensitivityPoint struct {
	// Variation is the demand change in percent, from -40 to 40.
	Variation int
	Demand    float64
	Quantity  float64
	TotalCost float64
}

// StockPoint is one sample of the stock projection.
type StockPoint struct {
	Cycle int
	Day   float64
	Stock float64
}

// inputs extracts D, S, H and Q* when all of them are usable.
func inputs(r *models.OptimizationResult) (d, s, h, q float64, ok bool) {
	q, ok = r.Quantity()
	if !ok {
		return 0, 0, 0, 0, false
	}
	d, s, h = r.AnnualDemand, r.OrderCost, r.HoldingCost
	if !finitePositive(d) || !finitePositive(s) || !finitePositive(h) {
		return 0, 0, 0, 0, false
	}
	return d, s, h, q, true
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// OrderingCost is the yearly cost of placing orders of size q: D·S/Q.
func OrderingCost(d, s, q float64) float64 {
	return d * s / q
}

// HoldingCost is the yearly cost of holding the average stock q/2: H·Q/2.
func HoldingCost(h, q float64) float64 {
	return h * q / 2
}

// TotalCost is OrderingCost + HoldingCost. A non-positive q has no finite cost.
func TotalCost(d, s, h, q float64) float64 {
	if q <= 0 {
		return math.Inf(1)
	}
	return OrderingCost(d, s, q) + HoldingCost(h, q)
}

// OptimalQuantity is the Wilson formula sqrt(2·D·S/H).
func OptimalQuantity(d, s, h float64) float64 {
	return math.Sqrt(2 * d * s / h)
}

// CostCurve samples the cost functions over [0.3·Q*, 2·Q*] in CurveSteps
// equal steps.
func CostCurve(r *models.OptimizationResult) []CostPoint {
	d, s, h, q, ok := inputs(r)
	if !ok {
		return []CostPoint{}
	}

	from, to := CurveFrom*q, CurveTo*q
	step := (to - from) / CurveSteps

	points := make([]CostPoint, 0, CurveSteps+1)
	for i := 0; i <= CurveSteps; i++ {
		qi := from + float64(i)*step
		ordering := OrderingCost(d, s, qi)
		holding := HoldingCost(h, qi)
		points = append(points, CostPoint{
			Quantity: qi,
			Ordering: ordering,
			Holding:  holding,
			Total:    ordering + holding,
		})
	}
	return points
}

// Sensitivity recomputes the optimum for demand varied from -40% to +40%.
func Sensitivity(r *models.OptimizationResult) []SensitivityPoint {
	d, s, h, _, ok := inputs(r)
	if !ok {
		return []SensitivityPoint{}
	}

	points := make([]SensitivityPoint, 0, 2*SensitivityRange/SensitivityStep+1)
	for v := -SensitivityRange; v <= SensitivityRange; v += SensitivityStep {
		dv := d * (1 + float64(v)/100)
		qv := OptimalQuantity(dv, s, h)
		points = append(points, SensitivityPoint{
			Variation: v,
			Demand:    dv,
			Quantity:  qv,
			TotalCost: TotalCost(dv, s, h, qv),
		})
	}
	return points
}

// CycleDays is the length of one replenishment cycle: Q*/(D/365).
func CycleDays(r *models.OptimizationResult) (float64, bool) {
	d, _, _, q, ok := inputs(r)
	if !ok {
		return 0, false
	}
	return q / (d / daysPerYear), true
}

// StockProjection draws Cycles linear drawdowns from Q* to 0. Each cycle
// starts at Q* on the day the previous one reached 0.
func StockProjection(r *models.OptimizationResult) []StockPoint {
	_, _, _, q, ok := inputs(r)
	if !ok {
		return []StockPoint{}
	}
	cycle, _ := CycleDays(r)

	points := make([]StockPoint, 0, Cycles*SamplesPerCycle)
	for c := 0; c < Cycles; c++ {
		start := float64(c) * cycle
		for j := 0; j < SamplesPerCycle; j++ {
			frac := float64(j) / float64(SamplesPerCycle-1)
			points = append(points, StockPoint{
				Cycle: c,
				Day:   start + frac*cycle,
				Stock: q * (1 - frac),
			})
		}
	}
	return points
}
