package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecord_UnmarshalFlat(t *testing.T) {
	raw := `{"id":5,"data_calculo":"2026-03-07T09:05:00.123456","tipo_calculo":"EOQ","nome_produto":"Parafuso",
		"custo_pedido":75,"custo_estocagem":2,"demanda_anual":12000,"quantidade_otima":948.68,"custo_total_minimo":1897.37}`

	var h HistoryRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &h))

	assert.Equal(t, int64(5), h.ID)
	assert.Equal(t, time.Date(2026, 3, 7, 9, 5, 0, 123456000, time.UTC), h.CalculatedAt)
	assert.Equal(t, "Parafuso", *h.Result.ProductName)
	assert.True(t, h.Result.HasEOQ())
}

func TestHistoryRecord_WithoutID(t *testing.T) {
	var h HistoryRecord
	err := json.Unmarshal([]byte(`{"custo_pedido":75}`), &h)
	assert.ErrorIs(t, err, ErrHistoryRecordWithoutID)
}

func TestTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2026-03-07T09:05:00Z"`, time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC)},
		{`"2026-03-07T09:05:00-03:00"`, time.Date(2026, 3, 7, 12, 5, 0, 0, time.UTC)},
		{`"2026-03-07T09:05:00"`, time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC)},
		{`"2026-03-07 09:05:00.5"`, time.Date(2026, 3, 7, 9, 5, 0, 500000000, time.UTC)},
		{`"2026-03-07"`, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tt.in), &ts), tt.in)
		assert.True(t, tt.want.Equal(ts.Time), "%s: got %v", tt.in, ts.Time)
	}

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"07/03/2026"`), &ts))
}

func TestTimestamp_Marshal(t *testing.T) {
	b, err := json.Marshal(Timestamp{Time: time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-07T09:05:00.000000"`, string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
