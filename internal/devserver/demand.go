package devserver

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	columnMonth = "mes"
	columnSales = "vendas"
)

// DemandSeries is the monthly sales history uploaded with a calculation.
type DemandSeries struct {
	Months []string
	Sales  []float64
}

// ParseDemandCSV reads a CSV with a "mes" and a "vendas" column. Other columns
// are ignored. A leading BOM and a ';' separator are accepted.
func ParseDemandCSV(content []byte) (DemandSeries, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = detectSeparator(content)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return DemandSeries{}, fmt.Errorf("%w: %w", ErrInvalidDemandFile, err)
	}

	monthIdx, salesIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case columnMonth:
			monthIdx = i
		case columnSales:
			salesIdx = i
		}
	}
	if monthIdx < 0 || salesIdx < 0 {
		return DemandSeries{}, ErrInvalidDemandFile
	}

	var series DemandSeries
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return DemandSeries{}, fmt.Errorf("%w: %w", ErrInvalidDemandFile, err)
		}
		if len(record) <= max(monthIdx, salesIdx) {
			return DemandSeries{}, fmt.Errorf("%w: line %d", ErrInvalidDemandFile, line)
		}

		sales, err := strconv.ParseFloat(strings.TrimSpace(record[salesIdx]), 64)
		if err != nil || sales < 0 {
			return DemandSeries{}, fmt.Errorf("%w: line %d", ErrInvalidDemandFile, line)
		}
		series.Months = append(series.Months, strings.TrimSpace(record[monthIdx]))
		series.Sales = append(series.Sales, sales)
	}

	if len(series.Sales) < 2 {
		return DemandSeries{}, ErrNotEnoughDemandData
	}
	return series, nil
}

func detectSeparator(content []byte) rune {
	firstLine, _, _ := bytes.Cut(content, []byte("\n"))
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

// Total is the sum of all monthly sales.
func (s DemandSeries) Total() float64 {
	var total float64
	for _, v := range s.Sales {
		total += v
	}
	return total
}
