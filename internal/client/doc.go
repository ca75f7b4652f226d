// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive dashboard runtime.
//
// It restores the persisted session, starts the terminal UI and owns the
// root context whose cancellation abandons every request still in flight.
package client
