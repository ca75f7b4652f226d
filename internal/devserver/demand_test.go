package devserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDemandCSV(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []float64
		wantErr error
	}{
		{
			name:    "comma separated",
			content: "mes,vendas\n2025-01,100\n2025-02,120.5\n",
			want:    []float64{100, 120.5},
		},
		{
			name:    "semicolon, BOM and extra column",
			content: "\xef\xbb\xbfproduto;Mes;Vendas\nA;jan;10\nA;fev;20\n",
			want:    []float64{10, 20},
		},
		{
			name:    "missing column",
			content: "mes,quantidade\njan,1\nfev,2\n",
			wantErr: ErrInvalidDemandFile,
		},
		{
			name:    "not a number",
			content: "mes,vendas\njan,dez\nfev,2\n",
			wantErr: ErrInvalidDemandFile,
		},
		{
			name:    "negative sales",
			content: "mes,vendas\njan,-1\nfev,2\n",
			wantErr: ErrInvalidDemandFile,
		},
		{
			name:    "single month",
			content: "mes,vendas\njan,1\n",
			wantErr: ErrNotEnoughDemandData,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: ErrInvalidDemandFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := ParseDemandCSV([]byte(tt.content))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, series.Sales)
			assert.Len(t, series.Months, len(tt.want))
		})
	}
}

func TestDemandSeries_Total(t *testing.T) {
	assert.Equal(t, 30.0, DemandSeries{Sales: []float64{10, 20}}.Total())
}
