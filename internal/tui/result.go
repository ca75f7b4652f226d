package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/internal/charts"
	"github.com/MKhiriev/go-stock-dashboard/internal/format"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/charmbracelet/lipgloss"
)

const msgNoEOQResult = "Este cálculo não tem um lote econômico para exibir."

// resultModel shows one optimization result: the KPI cards and the charts
// derived from it.
type resultModel struct {
	result *models.OptimizationResult
	status string
}

func (m resultModel) View() string {
	return renderPage(resultTitle(m.result), m.body(), "c: copiar resumo │ esc: voltar")
}

func resultTitle(r *models.OptimizationResult) string {
	title := "RESULTADO"
	if r == nil {
		return title
	}
	if r.CalculationType != "" {
		title += " " + r.CalculationType
	}
	if r.ProductName != nil && *r.ProductName != "" {
		title += " • " + *r.ProductName
	}
	if r.CalculatedAt != nil && !r.CalculatedAt.IsZero() {
		title += " • " + format.DateTime(r.CalculatedAt.Time)
	}
	return title
}

func (m resultModel) body() string {
	r := m.result
	if r == nil {
		return mutedStyle.Render("Nenhum cálculo realizado nesta sessão.")
	}

	var sections []string
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Demanda anual", format.Integer(r.AnnualDemand)+" un"),
		renderCard("Custo do pedido", format.Currency(r.OrderCost)),
		renderCard("Custo de estocagem", format.Currency(r.HoldingCost)),
	))

	if kpi, ok := charts.KPIs(r); ok {
		sections = append(sections, m.eoqSection(r, kpi))
	} else if !r.HasROP() {
		sections = append(sections, mutedStyle.Render(msgNoEOQResult))
	}

	if r.HasROP() {
		sections = append(sections, ropSection(r))
	}

	if m.status != "" {
		sections = append(sections, successStyle.Render(m.status))
	}
	return strings.Join(sections, "\n\n")
}

func (m resultModel) eoqSection(r *models.OptimizationResult, kpi charts.KPISet) string {
	cards := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderCard("Lote econômico (Q*)", format.Number(kpi.OptimalQuantity)+" un"),
			renderCard("Custo total mínimo", format.Currency(kpi.MinimumTotalCost)),
			renderCard("Pedidos por ano", format.Integer(float64(kpi.OrdersPerYear))),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderCard("Giro do estoque", format.Number(kpi.Turnover)+"x"),
			renderCard("Dias de estoque", format.Number(kpi.DaysOfStock)),
			renderCard("Ciclo de pedido", format.Number(kpi.CycleDays)+" dias"),
		),
	)

	sections := []string{cards}

	var forecast []string
	if r.ForecastMethod != "" {
		forecast = append(forecast, "Previsão: "+r.ForecastMethod)
	}
	if r.R2Score != nil {
		forecast = append(forecast, "R²: "+format.Decimal(*r.R2Score, 4))
	}
	if len(forecast) > 0 {
		sections = append(sections, mutedStyle.Render(strings.Join(forecast, " • ")))
	}

	q, _ := r.Quantity()
	if curve := renderCostCurve(charts.CostCurve(r), q); curve != "" {
		sections = append(sections, viewTitle("Curva de custos")+curve)
	}
	if b, ok := charts.Breakdown(r); ok {
		sections = append(sections, viewTitle("Composição do custo")+renderBreakdown(b))
	}
	if table := renderSensitivity(charts.Sensitivity(r)); table != "" {
		sections = append(sections, viewTitle("Sensibilidade à demanda")+table)
	}
	if stock := renderStockProjection(charts.StockProjection(r)); stock != "" {
		sections = append(sections, viewTitle("Projeção do estoque")+stock)
	}

	if r.FirstDerivative != nil || r.SecondDerivative != nil {
		sections = append(sections, mutedStyle.Render(fmt.Sprintf("CT'(Q) = %s\nCT''(Q) = %s",
			valueOrDash(r.FirstDerivative), valueOrDash(r.SecondDerivative))))
	}

	return strings.Join(sections, "\n\n")
}

func ropSection(r *models.OptimizationResult) string {
	level := format.Placeholder
	if v, ok := r.ServiceLevelPercent(); ok {
		level = format.Percent(v)
	}
	return viewTitle("Ponto de pedido") + lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderCard("Ponto de pedido", format.Optional(r.ReorderPoint, format.Number)+" un"),
			renderCard("Estoque de segurança", format.Optional(r.SafetyStock, format.Number)+" un"),
			renderCard("Nível de serviço", level),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderCard("Lead time", format.Optional(r.LeadTime, format.Number)+" dias"),
			renderCard("Demanda diária", format.Optional(r.DailyDemand, format.Number)+" un"),
		),
	)
}

// resultSummary is the plain-text summary copied to the clipboard.
func resultSummary(r *models.OptimizationResult) string {
	if r == nil {
		return ""
	}

	lines := []string{resultTitle(r)}
	lines = append(lines,
		"Demanda anual: "+format.Integer(r.AnnualDemand),
		"Custo do pedido: "+format.Currency(r.OrderCost),
		"Custo de estocagem: "+format.Currency(r.HoldingCost),
	)
	if kpi, ok := charts.KPIs(r); ok {
		lines = append(lines,
			"Lote econômico (Q*): "+format.Number(kpi.OptimalQuantity),
			"Custo total mínimo: "+format.Currency(kpi.MinimumTotalCost),
			"Pedidos por ano: "+format.Integer(float64(kpi.OrdersPerYear)),
		)
	}
	if r.HasROP() {
		lines = append(lines,
			"Ponto de pedido: "+format.Optional(r.ReorderPoint, format.Number),
			"Estoque de segurança: "+format.Optional(r.SafetyStock, format.Number),
		)
	}
	return strings.Join(lines, "\n")
}
