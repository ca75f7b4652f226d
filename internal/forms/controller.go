// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package forms holds the state of the EOQ and ROP calculation forms
// independently of how they are drawn.
//
// A [Controller] moves through Idle -> Validating -> Submitting ->
// Succeeded|Failed -> Idle. Validation runs locally before any request, at
// most one submission is in flight, a success clears the fields and a
// failure keeps them so the user can correct and resend.
package forms

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

// ErrSubmissionInFlight is returned by Submit while a previous submission of
// the same controller has not finished.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// State is the lifecycle stage of a form.
type State int

const (
	Idle State = iota
	Validating
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// SuccessHook runs after a successful submission has been recorded. It is
// best-effort: whatever it does cannot undo the result.
type SuccessHook func(ctx context.Context, result models.OptimizationResult)

// Controller is the form state shared by the EOQ and ROP forms. F is the raw
// form as typed, P the validated params.
type Controller[F, P any] struct {
	mu     sync.Mutex
	state  State
	form   F
	err    error
	result *models.OptimizationResult

	parse     func(context.Context, F) (P, error)
	submit    func(context.Context, P) (models.OptimizationResult, error)
	onSuccess SuccessHook
	logger    *logger.Logger
}

func newController[F, P any](
	parse func(context.Context, F) (P, error),
	submit func(context.Context, P) (models.OptimizationResult, error),
	logger *logger.Logger,
) *Controller[F, P] {
	return &Controller[F, P]{parse: parse, submit: submit, logger: logger}
}

// OnSuccess sets the hook run after each successful submission.
func (c *Controller[F, P]) OnSuccess(hook SuccessHook) {
	c.mu.Lock()
	c.onSuccess = hook
	c.mu.Unlock()
}

// Form returns a copy of the current fields.
func (c *Controller[F, P]) Form() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetForm replaces the fields. Edits are ignored while a submission is in flight.
func (c *Controller[F, P]) SetForm(form F) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy() {
		return
	}
	c.form = form
}

// Update edits the fields in place. Edits are ignored while a submission is
// in flight.
func (c *Controller[F, P]) Update(edit func(*F)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy() {
		return
	}
	edit(&c.form)
}

func (c *Controller[F, P]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submitting reports whether the submit action must be disabled.
func (c *Controller[F, P]) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy()
}

// Err returns the error of the last validation or submission.
func (c *Controller[F, P]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Result returns the last successful result.
func (c *Controller[F, P]) Result() (models.OptimizationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return models.OptimizationResult{}, false
	}
	return *c.result, true
}

// Reset acknowledges a finished submission and returns to Idle. The error is
// dropped, the fields and last result are kept.
func (c *Controller[F, P]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy() {
		return
	}
	c.state = Idle
	c.err = nil
}

// Submit validates the current fields and, when they are valid, sends them.
// A validation error leaves the controller Idle without any request.
func (c *Controller[F, P]) Submit(ctx context.Context) (models.OptimizationResult, error) {
	c.mu.Lock()
	if c.busy() {
		c.mu.Unlock()
		return models.OptimizationResult{}, ErrSubmissionInFlight
	}
	c.state = Validating
	c.err = nil
	form := c.form
	c.mu.Unlock()

	params, err := c.parse(ctx, form)
	if err != nil {
		c.mu.Lock()
		c.state = Idle
		c.err = err
		c.mu.Unlock()
		return models.OptimizationResult{}, err
	}

	c.mu.Lock()
	c.state = Submitting
	c.mu.Unlock()

	result, err := c.submit(ctx, params)

	c.mu.Lock()
	if err != nil {
		c.state = Failed
		c.err = err
		c.mu.Unlock()
		c.logger.Warn().Err(err).Msg("form submission failed")
		return models.OptimizationResult{}, err
	}

	var empty F
	c.state = Succeeded
	c.form = empty
	c.result = &result
	hook := c.onSuccess
	c.mu.Unlock()

	if hook != nil {
		hook(ctx, result)
	}

	return result, nil
}

func (c *Controller[F, P]) busy() bool {
	return c.state == Validating || c.state == Submitting
}
