package tui

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-stock-dashboard/internal/format"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/charmbracelet/bubbles/table"
)

// historyModel lists past calculations, newest first as returned by the
// backend.
type historyModel struct {
	records []models.HistoryRecord
	table   table.Model
	loading bool
}

func newHistoryModel() historyModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Data", Width: 16},
			{Title: "Tipo", Width: 5},
			{Title: "Produto", Width: 20},
			{Title: "Q*", Width: 10},
			{Title: "Custo total", Width: 14},
			{Title: "ROP", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return historyModel{table: t}
}

func (m *historyModel) setRecords(records []models.HistoryRecord) {
	m.records = records
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, historyRow(r))
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func historyRow(r models.HistoryRecord) table.Row {
	product := "-"
	if r.Result.ProductName != nil && *r.Result.ProductName != "" {
		product = fitText(*r.Result.ProductName, 20)
	}

	q, cost := format.Placeholder, format.Placeholder
	if r.Result.HasEOQ() {
		qv, _ := r.Result.Quantity()
		cv, _ := r.Result.TotalCost()
		q, cost = format.Number(qv), format.Currency(cv)
	}

	return table.Row{
		strconv.FormatInt(r.ID, 10),
		format.DateTime(r.CalculatedAt),
		r.Result.CalculationType,
		product,
		q,
		cost,
		format.Optional(r.Result.ReorderPoint, format.Number),
	}
}

func (m historyModel) current() (models.HistoryRecord, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return models.HistoryRecord{}, false
	}
	return m.records[idx], true
}

func (m historyModel) View() string {
	var body string
	switch {
	case m.loading && len(m.records) == 0:
		body = "Carregando histórico..."
	case len(m.records) == 0:
		body = mutedStyle.Render("Nenhum cálculo realizado ainda.")
	default:
		body = m.table.View() + "\n" + mutedStyle.Render(fmt.Sprintf("%d registro(s)", len(m.records)))
	}
	return renderPage("HISTÓRICO", body, "enter: ver resultado │ d: excluir │ r: atualizar │ esc: voltar")
}
