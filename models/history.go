// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrHistoryRecordWithoutID is returned when a history entry has no "id".
var ErrHistoryRecordWithoutID = errors.New("history record without id")

// HistoryRecord is a past calculation owned by the backend. The client only
// lists and deletes records; it never mutates them.
type HistoryRecord struct {
	ID           int64
	CalculatedAt time.Time
	Result       OptimizationResult
}

// UnmarshalJSON decodes the flat backend representation, where id and
// data_calculo sit next to the result fields.
func (h *HistoryRecord) UnmarshalJSON(b []byte) error {
	var result OptimizationResult
	if err := json.Unmarshal(b, &result); err != nil {
		return err
	}
	if result.ID == nil {
		return ErrHistoryRecordWithoutID
	}

	h.ID = *result.ID
	h.Result = result
	if result.CalculatedAt != nil {
		h.CalculatedAt = result.CalculatedAt.Time
	}
	return nil
}

// Timestamp decodes the ISO-8601 timestamps produced by the backend, with or
// without a zone offset and with optional fractional seconds.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON implements [json.Marshaler] using the backend's layout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format("2006-01-02T15:04:05.000000"))
}
