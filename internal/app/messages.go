// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages of the development backend
// that are not tied to a domain error.
package app

const (
	// MsgUserRegistered accompanies a successful registration.
	MsgUserRegistered = "Usuário registrado com sucesso!"

	// MsgOptimized accompanies a successful EOQ calculation.
	MsgOptimized = "Otimização calculada com sucesso!"

	// MsgROPCalculated accompanies a successful reorder point calculation.
	MsgROPCalculated = "ROP calculado com sucesso!"

	// MsgCalculationDeleted is formatted with the calculation id.
	MsgCalculationDeleted = "Cálculo %d deletado com sucesso"

	// MsgInvalidJSON is returned for a request body that is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgValidationPrefix prefixes validation failures of calculation input.
	MsgValidationPrefix = "Erro de validação: "

	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)
