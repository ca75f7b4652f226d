package service

import "errors"

var (
	// ErrNotAuthenticated is returned by protected operations called without a session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired is returned when the server rejected the token; the
	// session has already been cleared.
	ErrSessionExpired = errors.New("session expired")
	// ErrWrongCredentials is returned by Login for a 401 on /api/auth/login.
	ErrWrongCredentials = errors.New("wrong email or password")

	ErrLoginOnServer    = errors.New("login on server failed")
	ErrRegisterOnServer = errors.New("registration on server failed")
)
