// Package server runs the HTTP server of the development backend, including
// graceful shutdown when the run context ends.
package server
