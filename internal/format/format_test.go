package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.56, "R$ 1.234,56"},
		{0, "R$ 0,00"},
		{2.675, "R$ 2,68"},
		{1234567.891, "R$ 1.234.567,89"},
		{-10.5, "-R$ 10,50"},
		{math.NaN(), Placeholder},
		{math.Inf(1), Placeholder},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "Currency(%v)", tt.in)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.5, "1.234,5"},
		{10, "10"},
		{0.125, "0,13"},
		{948.683, "948,68"},
		{-3.1, "-3,1"},
		{math.NaN(), Placeholder},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.in), "Number(%v)", tt.in)
	}
}

func TestInteger(t *testing.T) {
	assert.Equal(t, "12.000", Integer(12000))
	assert.Equal(t, "949", Integer(948.68))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "95,5%", Percent(95.5))
	assert.Equal(t, "50%", Fraction(0.5))
	assert.Equal(t, Placeholder, Percent(math.Inf(-1)))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2026, 3, 7, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "07/03/2026 09:05", DateTime(ts))
	assert.Equal(t, "07/03/2026", Date(ts))
	assert.Equal(t, Placeholder, DateTime(time.Time{}))
}

func TestOptional(t *testing.T) {
	v := 1234.5
	assert.Equal(t, "1.234,5", Optional(&v, Number))
	assert.Equal(t, Placeholder, Optional(nil, Number))
}
