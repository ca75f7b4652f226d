package devserver

import "errors"

// Error texts are sent to clients as the "detail" field, in the language of
// the API.
var (
	ErrEmailTaken          = errors.New("Email já cadastrado no sistema")
	ErrWrongCredentials    = errors.New("Email ou senha incorretos")
	ErrUserNotFound        = errors.New("Usuário não encontrado")
	ErrCalculationNotFound = errors.New("Cálculo não encontrado ou você não tem permissão")
	ErrInvalidUserData     = errors.New("Dados de usuário inválidos")
	ErrInvalidDemandFile   = errors.New("O CSV deve conter as colunas 'mes' e 'vendas'")
	ErrNotCSV              = errors.New("O arquivo deve ser um CSV (.csv)")
	ErrInvalidParameters   = errors.New("Parâmetros inválidos")
	ErrInvalidToken        = errors.New("Could not validate credentials")
	ErrNotEnoughDemandData = errors.New("O CSV deve ter pelo menos dois meses de vendas")
)
