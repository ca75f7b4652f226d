// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated state of the client. A session with an empty
// token is anonymous; User is nil until the profile has been confirmed by
// the backend.
type Session struct {
	Token   string
	User    *User
	SavedAt time.Time
}

// StoredSession is the persisted part of a session: the token survives
// restarts, the profile is always fetched again.
type StoredSession struct {
	AccessToken string
	TokenType   string
	SavedAt     time.Time
}
