package tui

import (
	"github.com/MKhiriev/go-stock-dashboard/models"
)

type calculation int

const (
	calculationEOQ calculation = iota
	calculationROP
)

type authDoneMsg struct {
	err error
}

type historyLoadedMsg struct {
	records []models.HistoryRecord
	err     error
}

type submitDoneMsg struct {
	kind   calculation
	result models.OptimizationResult
	err    error
}

type historyDeletedMsg struct {
	id  int64
	err error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
