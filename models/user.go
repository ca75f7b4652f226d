// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the profile returned by GET /api/auth/me and embedded in the
// login response. Field names follow the backend wire format.
type User struct {
	// ID is the backend-assigned identifier of the account.
	ID int64 `json:"id"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// FullName is the display name ("nome_completo") entered at registration.
	FullName string `json:"nome_completo"`

	// Company is the optional company name ("empresa").
	Company *string `json:"empresa,omitempty"`
}

// FirstName returns the first word of FullName, used for greetings.
func (u User) FirstName() string {
	for i, r := range u.FullName {
		if r == ' ' {
			return u.FullName[:i]
		}
	}
	return u.FullName
}

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"nome_completo"`
	Company  *string `json:"empresa,omitempty"`
}
