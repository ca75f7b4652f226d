// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	loginEmail = iota
	loginPassword
)

// loginModel is the login screen: e-mail and password.
type loginModel struct {
	inputForm
}

func newLoginModel() loginModel {
	return loginModel{newInputForm(
		[]string{"E-mail", "Senha"},
		[]textinput.Model{
			newInput("voce@empresa.com", 254, false),
			newInput("senha", 256, true),
		},
	)}
}

func (m loginModel) form() models.LoginForm {
	return models.LoginForm{
		Email:    m.value(loginEmail),
		Password: m.value(loginPassword),
	}
}

func (m loginModel) View() string {
	return renderPage("ENTRAR", m.view("Entrar"), "esc: voltar │ tab: próximo campo │ enter: entrar")
}
