// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input locally, before anything is sent to
// the backend: login and registration forms, EOQ and ROP forms and their
// parsed parameters. Every failure is a sentinel error from errors.go so the
// view layer can translate it.
package validators

import "context"

// Validator validates a form or parameter struct. When fields are given only
// those fields are checked, in order, and the first failure is returned.
type Validator interface {
	Validate(ctx context.Context, data any, fields ...string) error
}

var (
	_ Validator = (*AuthFormValidator)(nil)
	_ Validator = (*OptimizationFormValidator)(nil)
)
