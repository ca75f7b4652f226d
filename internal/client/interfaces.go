// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable dashboard. Run restores the saved session, drives the
// terminal UI and returns once the user quits.
type Client interface {
	Run() error
}
