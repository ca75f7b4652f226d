// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
)

// Calculation kinds reported in "tipo_calculo".
const (
	CalculationEOQ = "EOQ"
	CalculationROP = "ROP"
)

// OptimizationResult is the payload produced by POST /api/optimize and
// POST /api/calculate-rop, and the shape of every history entry.
//
// Only the cost parameters and the annual demand are always present. EOQ
// fields are missing from ROP-only responses and vice versa, so optional
// values are pointers and must be read through the accessor methods.
type OptimizationResult struct {
	ID              *int64     `json:"id,omitempty"`
	CalculationType string     `json:"tipo_calculo,omitempty"`
	ProductName     *string    `json:"nome_produto,omitempty"`
	CalculatedAt    *Timestamp `json:"data_calculo,omitempty"`

	OrderCost    float64 `json:"custo_pedido"`
	HoldingCost  float64 `json:"custo_estocagem"`
	AnnualDemand float64 `json:"demanda_anual"`

	OptimalQuantity  *float64 `json:"quantidade_otima,omitempty"`
	MinimumTotalCost *float64 `json:"custo_total_minimo,omitempty"`
	OrdersPerYear    *float64 `json:"numero_pedidos_ano,omitempty"`
	ForecastMethod   string   `json:"metodo_previsao,omitempty"`
	R2Score          *float64 `json:"r2_score,omitempty"`

	ReorderPoint *float64 `json:"reorder_point,omitempty"`
	SafetyStock  *float64 `json:"safety_stock,omitempty"`
	LeadTime     *float64 `json:"lead_time,omitempty"`
	DailyDemand  *float64 `json:"demanda_diaria,omitempty"`
	ServiceLevel *float64 `json:"service_level,omitempty"`

	FirstDerivative  *string `json:"derivada_primeira,omitempty"`
	SecondDerivative *string `json:"derivada_segunda,omitempty"`
}

// UnmarshalJSON accepts "q_otimo" as an alias of "quantidade_otima", which
// older backend versions used.
func (r *OptimizationResult) UnmarshalJSON(b []byte) error {
	type plain OptimizationResult
	aux := struct {
		*plain
		QOtimo *float64 `json:"q_otimo,omitempty"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if r.OptimalQuantity == nil && aux.QOtimo != nil {
		r.OptimalQuantity = aux.QOtimo
	}
	return nil
}

// Quantity returns Q* when it is present, finite and strictly positive.
func (r *OptimizationResult) Quantity() (float64, bool) {
	if r == nil {
		return 0, false
	}
	return positive(r.OptimalQuantity)
}

// TotalCost returns the minimum total cost when it is present, finite and
// non-negative.
func (r *OptimizationResult) TotalCost() (float64, bool) {
	if r == nil || r.MinimumTotalCost == nil {
		return 0, false
	}
	v := *r.MinimumTotalCost
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// HasEOQ reports whether the result carries a displayable EOQ solution.
// A result without Q* is treated as "no result" rather than rendered as NaN.
func (r *OptimizationResult) HasEOQ() bool {
	_, okQ := r.Quantity()
	_, okC := r.TotalCost()
	return okQ && okC
}

// HasROP reports whether the result carries a reorder point.
func (r *OptimizationResult) HasROP() bool {
	if r == nil || r.ReorderPoint == nil {
		return false
	}
	v := *r.ReorderPoint
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ServiceLevelPercent returns the service level in percent. The backend
// reports a fraction (0.95) while forms use percent (95).
func (r *OptimizationResult) ServiceLevelPercent() (float64, bool) {
	if r == nil || r.ServiceLevel == nil {
		return 0, false
	}
	v := *r.ServiceLevel
	if v <= 1 {
		v *= 100
	}
	return v, true
}

func positive(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
