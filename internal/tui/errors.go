// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/forms"
	"github.com/MKhiriev/go-stock-dashboard/internal/service"
	"github.com/MKhiriev/go-stock-dashboard/internal/validators"
)

const (
	msgServerUnavailable = "Servidor indisponível ou sem conexão"
	msgSessionExpired    = "Sua sessão expirou. Entre novamente."
)

var validationMessages = []struct {
	err error
	msg string
}{
	{validators.ErrMissingOrderCost, "Informe o custo do pedido"},
	{validators.ErrInvalidOrderCost, "O custo do pedido deve ser um número maior que zero"},
	{validators.ErrMissingHoldingCost, "Informe o custo de estocagem"},
	{validators.ErrInvalidHoldingCost, "O custo de estocagem deve ser um número maior que zero"},
	{validators.ErrMissingLeadTime, "Informe o lead time"},
	{validators.ErrInvalidLeadTime, "O lead time deve ser um número inteiro de dias entre 1 e 365"},
	{validators.ErrMissingServiceLevel, "Informe o nível de serviço"},
	{validators.ErrInvalidServiceLevel, "O nível de serviço deve estar entre 50% e 99,9%"},
	{validators.ErrMissingFile, "Selecione um arquivo CSV"},
	{validators.ErrInvalidFileExtension, "O arquivo deve ter a extensão .csv"},
	{validators.ErrMissingEmail, "Informe o e-mail"},
	{validators.ErrInvalidEmail, "E-mail inválido"},
	{validators.ErrMissingPassword, "Informe a senha"},
	{validators.ErrShortPassword, "A senha deve ter pelo menos 6 caracteres"},
	{validators.ErrPasswordMismatch, "As senhas não coincidem"},
	{validators.ErrMissingFullName, "Informe o nome completo"},
}

// humanizeError turns an error into the message shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, v := range validationMessages {
		if errors.Is(err, v.err) {
			return v.msg
		}
	}

	switch {
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrNotAuthenticated):
		return msgSessionExpired
	case errors.Is(err, service.ErrWrongCredentials):
		return "E-mail ou senha incorretos"
	case errors.Is(err, forms.ErrSubmissionInFlight):
		return "Aguarde o término do cálculo em andamento"
	case errors.Is(err, adapter.ErrFileUnreadable):
		return "Não foi possível ler o arquivo CSV"
	case errors.Is(err, adapter.ErrRequestFailed):
		return msgServerUnavailable
	case errors.Is(err, adapter.ErrInvalidResponse):
		return "Resposta inválida do servidor"
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && strings.TrimSpace(respErr.Detail) != "" {
		return respErr.Detail
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

func isSessionLost(err error) bool {
	return errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrNotAuthenticated)
}

// Notice returns the welcome screen message for an error that happened
// before the UI started, such as a failed session restore.
func Notice(err error) string {
	return humanizeError(err)
}
