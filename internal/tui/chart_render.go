package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/internal/charts"
	"github.com/MKhiriev/go-stock-dashboard/internal/format"
)

const (
	plotWidth  = 60
	plotHeight = 12
	barWidth   = 30
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// renderCostCurve plots the ordering (o), holding (h) and total (*) cost
// series; the column of Q* is marked with │.
func renderCostCurve(points []charts.CostPoint, optimum float64) string {
	if len(points) < 2 {
		return ""
	}

	top := 0.0
	for _, p := range points {
		top = math.Max(top, p.Total)
	}
	if top <= 0 {
		return ""
	}

	grid := make([][]rune, plotHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
	}
	row := func(v float64) int {
		r := int(math.Round((1 - v/top) * float64(plotHeight-1)))
		return min(max(r, 0), plotHeight-1)
	}

	optimumCol := -1
	for col := 0; col < plotWidth; col++ {
		p := points[col*(len(points)-1)/(plotWidth-1)]
		if optimumCol < 0 && p.Quantity >= optimum {
			optimumCol = col
			for r := range grid {
				grid[r][col] = '│'
			}
		}
		grid[row(p.Ordering)][col] = 'o'
		grid[row(p.Holding)][col] = 'h'
		grid[row(p.Total)][col] = '*'
	}

	var b strings.Builder
	axis := len(format.Currency(top))
	for r, line := range grid {
		label := ""
		switch r {
		case 0:
			label = format.Currency(top)
		case plotHeight - 1:
			label = format.Currency(0)
		}
		b.WriteString(fmt.Sprintf("%*s ┤", axis, label))
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", axis+1) + "└" + strings.Repeat("─", plotWidth) + "\n")

	from := format.Integer(points[0].Quantity)
	to := format.Integer(points[len(points)-1].Quantity)
	gap := max(plotWidth-len(from)-len(to), 1)
	b.WriteString(strings.Repeat(" ", axis+2) + from + strings.Repeat(" ", gap) + to + "\n")
	b.WriteString(mutedStyle.Render("* custo total   o custo de pedido   h custo de estocagem   │ Q*"))
	return b.String()
}

// renderSparkline draws one block per value, scaled to the largest value.
func renderSparkline(values []float64) string {
	top := 0.0
	for _, v := range values {
		top = math.Max(top, v)
	}

	var b strings.Builder
	for _, v := range values {
		if top <= 0 || v <= 0 {
			b.WriteRune(sparkLevels[0])
			continue
		}
		idx := int(math.Round(v / top * float64(len(sparkLevels)-1)))
		b.WriteRune(sparkLevels[min(idx, len(sparkLevels)-1)])
	}
	return b.String()
}

func renderStockProjection(points []charts.StockPoint) string {
	if len(points) == 0 {
		return ""
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Stock
	}
	last := points[len(points)-1]
	return fmt.Sprintf("%s\n%s",
		renderSparkline(values),
		mutedStyle.Render(fmt.Sprintf("%d ciclos • %s dias • pico %s un", charts.Cycles, format.Number(last.Day), format.Number(points[0].Stock))),
	)
}

func renderBar(share float64) string {
	if math.IsNaN(share) || share < 0 {
		share = 0
	}
	n := min(int(math.Round(share*barWidth)), barWidth)
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

func renderBreakdown(b charts.CostBreakdown) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("Pedidos    %s %s  %s\n", renderBar(b.OrderingShare), format.Fraction(b.OrderingShare), format.Currency(b.Ordering)))
	s.WriteString(fmt.Sprintf("Estocagem  %s %s  %s\n", renderBar(b.HoldingShare), format.Fraction(b.HoldingShare), format.Currency(b.Holding)))
	s.WriteString(fmt.Sprintf("Comprando metade da demanda por vez: %s (economia de %s)", format.Currency(b.Baseline), format.Currency(b.Savings)))
	return s.String()
}

func renderSensitivity(points []charts.SensitivityPoint) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-8s │ %12s │ %10s │ %14s\n", "Demanda", "Anual", "Q*", "Custo total"))
	b.WriteString("─────────┼──────────────┼────────────┼───────────────\n")
	for _, p := range points {
		line := fmt.Sprintf("%+6d%%  │ %12s │ %10s │ %14s", p.Variation, format.Integer(p.Demand), format.Number(p.Quantity), format.Currency(p.TotalCost))
		if p.Variation == 0 {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
