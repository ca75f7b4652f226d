// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session"
	// sessionRowID is the id of the only row the session table may hold.
	sessionRowID = 1
)

func saveSessionQuery(accessToken, tokenType string, savedAt time.Time) (string, []any, error) {
	return sq.Replace(sessionTable).
		Columns("id", "access_token", "token_type", "saved_at").
		Values(sessionRowID, accessToken, tokenType, savedAt.UTC()).
		ToSql()
}

func loadSessionQuery() (string, []any, error) {
	return sq.Select("access_token", "token_type", "saved_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func clearSessionQuery() (string, []any, error) {
	return sq.Delete(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
