package server

import "context"

// Server defines the lifecycle contract of the development backend.
type Server interface {
	// Run starts serving requests and blocks until ctx is done and the
	// server has shut down.
	Run(ctx context.Context) error
}
