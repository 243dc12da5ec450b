package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/statement-analyzer/internal/config"
	"fjacquet/statement-analyzer/internal/parsererror"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.CSV.Delimiter = ","
	cfg.Parser.PDF.LineTolerance = 5.0
	cfg.Parser.PDF.LookaheadLines = 2
	cfg.Parser.PDF.MinStructured = 5
	cfg.Parser.PDF.BalanceGapRatio = 0.1
	return cfg
}

func TestIngestCSV(t *testing.T) {
	data := []byte("Date,Description,Amount\n" +
		"01/02/2024,Coffee,-150.00\n" +
		"02/03/2024,Salary,50000.00\n")

	result, err := New(testConfig(), nil).Ingest(data, KindCSV, "")
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, 2, s.TotalTransactions)
	assert.True(t, s.TotalCredits.Equal(decimal.RequireFromString("50000")))
	assert.True(t, s.TotalDebits.Equal(decimal.RequireFromString("150")))
	assert.True(t, s.NetAmount.Equal(decimal.RequireFromString("49850")))
	assert.True(t, s.AverageTransaction.Equal(decimal.RequireFromString("25075")))

	assert.Equal(t, []string{"Date", "Description", "Amount"}, result.OriginalColumns)
	assert.Contains(t, result.MonthlyBreakdown, "February 2024")
	assert.Contains(t, result.MonthlyBreakdown, "March 2024")
}

func TestIngestCSVNoDataRows(t *testing.T) {
	_, err := New(testConfig(), nil).Ingest([]byte("Date,Description,Amount\n"), KindCSV, "")
	assert.ErrorIs(t, err, parsererror.ErrNoDataFound)
}

func TestIngestCSVAllRowsZero(t *testing.T) {
	data := []byte("Date,Description,Amount\n01/02/2024,Fee reversal,0.00\n")

	_, err := New(testConfig(), nil).Ingest(data, KindCSV, "")
	assert.ErrorIs(t, err, parsererror.ErrNoTransactions)
}

func TestIngestUnsupportedKind(t *testing.T) {
	_, err := New(testConfig(), nil).Ingest([]byte("x"), Kind("docx"), "")
	assert.ErrorIs(t, err, parsererror.ErrUnsupportedFormat)
}

func TestIngestMalformedPDF(t *testing.T) {
	_, err := New(testConfig(), nil).Ingest([]byte("not a pdf at all"), KindPDF, "")

	var malformed *parsererror.MalformedSourceError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "PDF", malformed.Format)
	assert.False(t, parsererror.IsPasswordRetryable(err))
}

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"statement.csv", KindCSV},
		{"Statement.CSV", KindCSV},
		{"statement.xlsx", KindSpreadsheet},
		{"statement.xls", KindSpreadsheet},
		{"statement.pdf", KindPDF},
	}
	for _, tt := range tests {
		got, err := KindFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := KindFromPath("statement.docx")
	assert.ErrorIs(t, err, parsererror.ErrUnsupportedFormat)
}
