// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Token is the body of a successful POST /api/auth/login.
//
// AccessToken is an opaque bearer credential from the client's point of
// view; the client only stores it and attaches it to outgoing requests.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`

	// User is filled by backends that embed the profile in the login
	// response. It is advisory; the session always confirms it via /me.
	User *User `json:"user,omitempty"`
}

// String returns the raw access token.
func (t Token) String() string {
	return t.AccessToken
}
