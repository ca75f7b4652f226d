package tui

import (
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	eoqOrderCost = iota
	eoqHoldingCost
	eoqProductName
	eoqFile
)

const (
	ropLeadTime = iota
	ropServiceLevel
	ropProductName
	ropFile
)

const csvHint = "O CSV deve ter as colunas mes,vendas com um mês por linha."

type eoqFormModel struct {
	inputForm
}

func newEOQFormModel() eoqFormModel {
	return eoqFormModel{newInputForm(
		[]string{"Custo do pedido (R$)", "Custo de estocagem (R$/un/ano)", "Nome do produto (opcional)", "Arquivo CSV"},
		[]textinput.Model{
			newInput("75,00", 20, false),
			newInput("2,00", 20, false),
			newInput("Parafuso M8", 120, false),
			newInput("/caminho/vendas.csv", 1024, false),
		},
	)}
}

func (m eoqFormModel) form() models.EOQForm {
	return models.EOQForm{
		OrderCost:   m.value(eoqOrderCost),
		HoldingCost: m.value(eoqHoldingCost),
		ProductName: m.value(eoqProductName),
		FilePath:    m.value(eoqFile),
	}
}

func (m *eoqFormModel) load(f models.EOQForm) {
	m.setValues(f.OrderCost, f.HoldingCost, f.ProductName, f.FilePath)
}

func (m eoqFormModel) View() string {
	body := m.view("Calcular") + "\n\n" + mutedStyle.Render(csvHint)
	return renderPage("LOTE ECONÔMICO (EOQ)", body, "esc: voltar │ tab: próximo campo │ enter: calcular")
}

type ropFormModel struct {
	inputForm
}

func newROPFormModel() ropFormModel {
	return ropFormModel{newInputForm(
		[]string{"Lead time (dias)", "Nível de serviço (%)", "Nome do produto (opcional)", "Arquivo CSV"},
		[]textinput.Model{
			newInput("7", 3, false),
			newInput("95", 5, false),
			newInput("Parafuso M8", 120, false),
			newInput("/caminho/vendas.csv", 1024, false),
		},
	)}
}

func (m ropFormModel) form() models.ROPForm {
	return models.ROPForm{
		LeadTime:     m.value(ropLeadTime),
		ServiceLevel: m.value(ropServiceLevel),
		ProductName:  m.value(ropProductName),
		FilePath:     m.value(ropFile),
	}
}

func (m *ropFormModel) load(f models.ROPForm) {
	m.setValues(f.LeadTime, f.ServiceLevel, f.ProductName, f.FilePath)
}

func (m ropFormModel) View() string {
	body := m.view("Calcular") + "\n\n" + mutedStyle.Render(csvHint)
	return renderPage("PONTO DE PEDIDO (ROP)", body, "esc: voltar │ tab: próximo campo │ enter: calcular")
}
