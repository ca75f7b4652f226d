package tui

import (
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	registerFullName = iota
	registerEmail
	registerCompany
	registerPassword
	registerConfirm
)

// registerModel is the account creation screen.
type registerModel struct {
	inputForm
}

func newRegisterModel() registerModel {
	return registerModel{newInputForm(
		[]string{"Nome completo", "E-mail", "Empresa (opcional)", "Senha", "Confirmar senha"},
		[]textinput.Model{
			newInput("Maria Silva", 120, false),
			newInput("voce@empresa.com", 254, false),
			newInput("Empresa Ltda", 120, false),
			newInput("mínimo 6 caracteres", 256, true),
			newInput("repita a senha", 256, true),
		},
	)}
}

func (m registerModel) form() models.RegisterForm {
	return models.RegisterForm{
		FullName:        m.value(registerFullName),
		Email:           m.value(registerEmail),
		Company:         m.value(registerCompany),
		Password:        m.value(registerPassword),
		ConfirmPassword: m.value(registerConfirm),
	}
}

func (m registerModel) View() string {
	return renderPage("CRIAR CONTA", m.view("Criar conta"), "esc: voltar │ tab: próximo campo │ enter: cadastrar")
}
