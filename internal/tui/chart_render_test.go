package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MKhiriev/go-stock-dashboard/internal/charts"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "█▅▁", renderSparkline([]float64{10, 5.5, 0}))
	assert.Equal(t, "▁▁", renderSparkline([]float64{0, 0}))
	assert.Empty(t, renderSparkline(nil))
}

func TestRenderBar(t *testing.T) {
	bar := renderBar(0.5)
	assert.Equal(t, barWidth, utf8.RuneCountInString(bar))
	assert.Equal(t, barWidth/2, strings.Count(bar, "█"))
	assert.Equal(t, strings.Repeat("░", barWidth), renderBar(-1))
	assert.Equal(t, strings.Repeat("█", barWidth), renderBar(2))
}

func TestRenderCostCurve(t *testing.T) {
	r := &models.OptimizationResult{AnnualDemand: 12000, OrderCost: 75, HoldingCost: 2, OptimalQuantity: ptrFloat(948.68)}
	out := renderCostCurve(charts.CostCurve(r), 948.68)

	assert.Contains(t, out, "*")
	assert.Contains(t, out, "│")
	assert.Empty(t, renderCostCurve(nil, 1))
}

func TestResultView_WithoutEOQ(t *testing.T) {
	m := resultModel{result: &models.OptimizationResult{AnnualDemand: 1000, OrderCost: 10, HoldingCost: 1}}
	assert.Contains(t, m.View(), msgNoEOQResult)
}
