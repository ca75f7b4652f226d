// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the `{success, data}` wrapper used by most backend endpoints.
// Clients must also accept the bare payload; see adapter normalization.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    T      `json:"data"`
}

// ErrorResponse is the FastAPI-style error body `{"detail": "..."}`.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
