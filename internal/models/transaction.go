// Package models provides the data structures shared by every parser and
// the analysis pipeline.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction type values. Credit covers the zero-amount boundary as well:
// a transaction is a credit iff its signed amount is >= 0.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// DefaultNarration is substituted when no description survives extraction.
const DefaultNarration = "Transaction"

// Transaction is the canonical record every source format is normalized
// into. It is built once by a parser and never mutated afterwards; the
// aggregator only reads it.
type Transaction struct {
	Date           string          `csv:"Date"`
	Narration      string          `csv:"Narration"`
	ChqRefNo       string          `csv:"Chq./Ref.No."`
	ValueDate      string          `csv:"ValueDt"`
	WithdrawalAmt  decimal.Decimal `csv:"WithdrawalAmt."`
	DepositAmt     decimal.Decimal `csv:"DepositAmt."`
	ClosingBalance decimal.Decimal `csv:"ClosingBalance"`
	Amount         decimal.Decimal `csv:"Amount"`
	Type           string          `csv:"Type"`
	AbsAmount      decimal.Decimal `csv:"AbsAmount"`
}

// NewTransaction builds a Transaction and derives the dependent fields:
// Amount = DepositAmt - WithdrawalAmt, Type from the sign of Amount,
// AbsAmount = |Amount|. ValueDate falls back to Date and Narration to
// DefaultNarration so that both producing paths agree on the defaults.
func NewTransaction(date, narration, chqRefNo, valueDate string, withdrawal, deposit, closingBalance decimal.Decimal) Transaction {
	narration = strings.TrimSpace(narration)
	if narration == "" {
		narration = DefaultNarration
	}
	if valueDate == "" {
		valueDate = date
	}

	amount := deposit.Sub(withdrawal)
	txType := TypeCredit
	if amount.IsNegative() {
		txType = TypeDebit
	}

	return Transaction{
		Date:           date,
		Narration:      narration,
		ChqRefNo:       chqRefNo,
		ValueDate:      valueDate,
		WithdrawalAmt:  withdrawal,
		DepositAmt:     deposit,
		ClosingBalance: closingBalance,
		Amount:         amount,
		Type:           txType,
		AbsAmount:      amount.Abs(),
	}
}

// IsCredit returns true if the transaction is a credit (incoming money).
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// IsDebit returns true if the transaction is a debit (outgoing money).
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// ParseAmount converts a raw amount string to a decimal. It tolerates the
// formatting seen in real statements: thousands separators, currency
// symbols and stray spaces. Unparsable input yields zero, which the
// mappers treat as "not applicable".
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "'", "")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "INR", "")
	amount = strings.ReplaceAll(amount, "Rs.", "")
	amount = strings.ReplaceAll(amount, "₹", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "€", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
