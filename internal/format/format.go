// Package format renders values the way the dashboard shows them to a
// Brazilian user: R$ 1.234,56 for money, 1.234,5 for quantities and
// dd/mm/yyyy hh:mm for timestamps.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencySymbol = "R$"
	dateTimeLayout = "02/01/2006 15:04"
	dateLayout     = "02/01/2006"

	// Placeholder is shown instead of values that are missing or not finite.
	Placeholder = "—"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats v as Brazilian reais with exactly two decimals, rounding
// half away from zero.
func Currency(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	rounded := decimal.NewFromFloat(v).Round(2)
	amount := printer.Sprintf("%.2f", rounded.Abs().InexactFloat64())
	if rounded.IsNegative() {
		return "-" + currencySymbol + " " + amount
	}
	return currencySymbol + " " + amount
}

// Number formats v with grouping and at most two decimals; trailing zeros
// are dropped (1234.5 -> "1.234,5", 10 -> "10").
func Number(v float64) string {
	return Decimal(v, 2)
}

// Decimal formats v with grouping and at most places decimals.
func Decimal(v float64, places int32) string {
	if !finite(v) {
		return Placeholder
	}
	rounded := decimal.NewFromFloat(v).Round(places)

	digits := 0
	if s := rounded.String(); strings.Contains(s, ".") {
		digits = len(s) - strings.Index(s, ".") - 1
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", digits), rounded.InexactFloat64())
}

// Integer formats v rounded to a whole number with grouping.
func Integer(v float64) string {
	return Decimal(v, 0)
}

// Percent formats a percentage value (95.5 -> "95,5%").
func Percent(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return Number(v) + "%"
}

// Fraction formats a 0..1 share as a percentage (0.25 -> "25%").
func Fraction(v float64) string {
	return Percent(v * 100)
}

// DateTime formats t as dd/mm/yyyy hh:mm in the local zone.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Local().Format(dateTimeLayout)
}

// Date formats t as dd/mm/yyyy in the local zone.
func Date(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Local().Format(dateLayout)
}

// Optional formats *v with f, or returns Placeholder for nil.
func Optional(v *float64, f func(float64) string) string {
	if v == nil {
		return Placeholder
	}
	return f(*v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
