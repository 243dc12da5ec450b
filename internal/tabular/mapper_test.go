package tabular

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/statement-analyzer/internal/models"
)

func tableOf(columns []string, rows ...map[string]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

func TestMapTransactionsSeparateFlowColumns(t *testing.T) {
	table := tableOf(
		[]string{"Txn Date", "Narration", "Withdrawal Amt.", "Deposit Amt."},
		map[string]string{"Txn Date": "01/02/2024", "Narration": "ATM WDL", "Withdrawal Amt.": "500.00", "Deposit Amt.": ""},
		map[string]string{"Txn Date": "02/02/2024", "Narration": "SALARY", "Withdrawal Amt.": "", "Deposit Amt.": "50,000.00"},
	)

	txs := MapTransactions(table, nil)
	require.Len(t, txs, 2)

	assert.Equal(t, models.TypeDebit, txs[0].Type)
	assert.True(t, txs[0].WithdrawalAmt.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("-500.00")))

	assert.Equal(t, models.TypeCredit, txs[1].Type)
	assert.True(t, txs[1].DepositAmt.Equal(decimal.RequireFromString("50000.00")))
	assert.Equal(t, "SALARY", txs[1].Narration)
}

func TestMapTransactionsSignedAmountColumn(t *testing.T) {
	table := tableOf(
		[]string{"Date", "Description", "Amount"},
		map[string]string{"Date": "01/02/2024", "Description": "Coffee", "Amount": "-200.00"},
		map[string]string{"Date": "02/02/2024", "Description": "Refund", "Amount": "500.00"},
	)

	txs := MapTransactions(table, nil)
	require.Len(t, txs, 2)

	assert.Equal(t, models.TypeDebit, txs[0].Type)
	assert.True(t, txs[0].WithdrawalAmt.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, txs[0].AbsAmount.Equal(decimal.RequireFromString("200.00")))

	assert.Equal(t, models.TypeCredit, txs[1].Type)
	assert.True(t, txs[1].DepositAmt.Equal(decimal.RequireFromString("500.00")))
}

func TestMapTransactionsDebitCreditHeader(t *testing.T) {
	// "Description" matches a flow keyword by substring, so this header
	// set resolves both flow roles and debit rows map cleanly.
	table := tableOf(
		[]string{"Date", "Description", "Debit", "Credit"},
		map[string]string{"Date": "01/02/2024", "Description": "Coffee", "Debit": "150.00", "Credit": ""},
	)

	txs := MapTransactions(table, nil)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TypeDebit, txs[0].Type)
	assert.True(t, txs[0].WithdrawalAmt.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, "Coffee", txs[0].Narration)
}

func TestMapTransactionsDropsZeroAmountRows(t *testing.T) {
	table := tableOf(
		[]string{"Date", "Description", "Amount"},
		map[string]string{"Date": "01/02/2024", "Description": "Fee reversal", "Amount": "0.00"},
		map[string]string{"Date": "02/02/2024", "Description": "Note only", "Amount": "n/a"},
		map[string]string{"Date": "03/02/2024", "Description": "Real", "Amount": "10.00"},
	)

	txs := MapTransactions(table, nil)
	require.Len(t, txs, 1)
	assert.Equal(t, "Real", txs[0].Narration)
}

func TestMapTransactionsCurrencySymbols(t *testing.T) {
	table := tableOf(
		[]string{"Date", "Description", "Amount"},
		map[string]string{"Date": "01/02/2024", "Description": "Rent", "Amount": "₹ 15,000.00"},
	)

	txs := MapTransactions(table, nil)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].DepositAmt.Equal(decimal.RequireFromString("15000.00")))
}
