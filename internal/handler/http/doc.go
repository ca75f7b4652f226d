// Package http implements the REST transport of the development backend.
//
// It wires chi routes to [devserver.Backend] and carries the cross-cutting
// middleware: panic recovery, request tracing, access logging, request
// timeouts and bearer-token authentication. Errors are answered with a
// `{"detail": "..."}` body, successes with the `{success, data}` envelope.
package http
