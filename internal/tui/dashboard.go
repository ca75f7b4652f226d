package tui

import (
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/internal/charts"
	"github.com/MKhiriev/go-stock-dashboard/internal/format"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

type dashboardAction int

const (
	actionEOQ dashboardAction = iota
	actionROP
	actionHistory
	actionLastResult
	actionAbout
	actionLogout
)

var dashboardItems = []struct {
	action dashboardAction
	label  string
}{
	{actionEOQ, "Calcular lote econômico (EOQ)"},
	{actionROP, "Calcular ponto de pedido (ROP)"},
	{actionHistory, "Histórico de cálculos"},
	{actionLastResult, "Último resultado"},
	{actionAbout, "Sobre"},
	{actionLogout, "Sair da conta"},
}

// dashboardModel is the home screen of an authenticated user.
type dashboardModel struct {
	user    models.User
	summary charts.Summary
	idx     int
	loading bool
	spinner spinner.Model
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return dashboardModel{spinner: s}
}

func (m dashboardModel) selected() dashboardAction {
	return dashboardItems[m.idx].action
}

func (m dashboardModel) View() string {
	var b strings.Builder

	greeting := "Olá"
	if name := m.user.FirstName(); name != "" {
		greeting += ", " + name
	}
	b.WriteString(greeting + "!\n\n")

	latest := format.Placeholder
	if m.summary.Latest != nil {
		latest = format.DateTime(m.summary.Latest.CalculatedAt)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Total de análises", format.Integer(float64(m.summary.TotalAnalyses))),
		renderCard("Economia estimada", format.Currency(m.summary.EstimatedSavings)),
		renderCard("Última análise", latest),
	))
	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spinner.View() + " atualizando histórico...\n")
	}
	b.WriteString("\n")

	for i, item := range dashboardItems {
		cursor := "  "
		line := item.label
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	return renderPage("PAINEL DE ESTOQUE", strings.TrimRight(b.String(), "\n"),
		"enter: abrir │ h: histórico │ r: atualizar │ L: sair da conta │ q: fechar")
}
