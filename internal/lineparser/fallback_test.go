package lineparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/statement-analyzer/internal/pdfextract"
)

func docFromFlatText(text string) *pdfextract.Document {
	return &pdfextract.Document{FlatText: text}
}

func TestFallbackRequiresDateAndAmount(t *testing.T) {
	doc := docFromFlatText(
		"STATEMENT OF ACCOUNT\n" +
			"01/02/2024 OPENING PAGE\n" + // date, no amount
			"BALANCE 5000.00\n" + // amount, no date
			"01/02/2024 UPI PAYMENT 350.00\n")

	txs := NewFallbackParser().Parse(doc)
	require.Len(t, txs, 1)
	assert.Equal(t, "01/02/2024", txs[0].Date)
	assert.True(t, txs[0].DepositAmt.Equal(decimal.RequireFromString("350.00")))
}

func TestFallbackTwoAmountsAreFlows(t *testing.T) {
	// The fallback never guesses a balance from two amounts.
	txs := NewFallbackParser().Parse(docFromFlatText("01/02/24 TRANSFER 100.00 9,000.00\n"))
	require.Len(t, txs, 1)
	assert.True(t, txs[0].WithdrawalAmt.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, txs[0].DepositAmt.Equal(decimal.RequireFromString("9000.00")))
	assert.True(t, txs[0].ClosingBalance.IsZero())
}

func TestFallbackThreeAmounts(t *testing.T) {
	txs := NewFallbackParser().Parse(docFromFlatText("01/02/24 ATM WDL 500.00 100.00 9400.00\n"))
	require.Len(t, txs, 1)
	assert.True(t, txs[0].WithdrawalAmt.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, txs[0].DepositAmt.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, txs[0].ClosingBalance.Equal(decimal.RequireFromString("9400.00")))
}

func TestFallbackFindsDateAnywhereInLine(t *testing.T) {
	// Unlike the structured pass the date does not have to open the line.
	txs := NewFallbackParser().Parse(docFromFlatText("TXN 01/02/2024 GROCERIES 75.50\n"))
	require.Len(t, txs, 1)
	assert.Equal(t, "01/02/2024", txs[0].Date)
}

func TestSelectorPrefersStructuredWhenEnough(t *testing.T) {
	// Two far-apart amounts tell the strategies apart: structured calls
	// the larger one a balance, the fallback books it as a deposit.
	doc := &pdfextract.Document{
		Lines:    []string{"01/02/24 TEST LINE 100.00 9,000.00"},
		FlatText: "01/02/24 TEST LINE 100.00 9,000.00\n",
	}

	selector := NewSelector(2, 0.1, 1, nil)
	txs := selector.Parse(doc)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].ClosingBalance.Equal(decimal.RequireFromString("9000.00")))
	assert.True(t, txs[0].DepositAmt.IsZero())
}

func TestSelectorFallsBackWhenStructuredTooSparse(t *testing.T) {
	// No reconstructed lines, so the structured pass recovers nothing and
	// the flat-text output is accepted instead.
	doc := &pdfextract.Document{
		FlatText: "01/02/24 TEST LINE 100.00 9,000.00\n",
	}

	selector := NewSelector(2, 0.1, 1, nil)
	txs := selector.Parse(doc)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].DepositAmt.Equal(decimal.RequireFromString("9000.00")))
	assert.True(t, txs[0].ClosingBalance.IsZero())
}

func TestSelectorReturnsLastOutputBelowGate(t *testing.T) {
	// Neither strategy reaches the gate; the fallback's output still
	// comes back so the caller can decide what sparse means.
	doc := &pdfextract.Document{
		FlatText: "01/02/24 LONE ENTRY 42.00\n",
	}

	selector := NewSelector(2, 0.1, 5, nil)
	txs := selector.Parse(doc)
	assert.Len(t, txs, 1)
}
