package tabular

import (
	"github.com/shopspring/decimal"

	"fjacquet/statement-analyzer/internal/logging"
	"fjacquet/statement-analyzer/internal/models"
)

// MapTransactions converts the table's rows into canonical transactions
// using inferred column roles. Rows whose net amount is exactly zero are
// dropped; only real flows become transactions.
func MapTransactions(table *Table, logger logging.Logger) []models.Transaction {
	if logger == nil {
		logger = logging.GetLogger()
	}

	roles := InferRoles(table.Columns)
	logger.Debug("Inferred column roles",
		logging.Field{Key: "date", Value: roles.Date},
		logging.Field{Key: "description", Value: roles.Description},
		logging.Field{Key: "amount", Value: roles.Amount},
		logging.Field{Key: "withdrawal", Value: roles.Withdrawal},
		logging.Field{Key: "deposit", Value: roles.Deposit})

	var transactions []models.Transaction
	for _, row := range table.Rows {
		var withdrawal, deposit decimal.Decimal

		if roles.Withdrawal != "" && roles.Deposit != "" {
			// Separate flow columns: take both values as they stand.
			withdrawal = models.ParseAmount(row[roles.Withdrawal])
			deposit = models.ParseAmount(row[roles.Deposit])
		} else {
			// Single signed amount column routes by sign.
			amount := models.ParseAmount(row[roles.Amount])
			if amount.IsNegative() {
				withdrawal = amount.Abs()
			} else {
				deposit = amount
			}
		}

		tx := models.NewTransaction(
			row[roles.Date],
			row[roles.Description],
			"", "",
			withdrawal, deposit, decimal.Zero,
		)
		if tx.Amount.IsZero() {
			continue
		}
		transactions = append(transactions, tx)
	}

	logger.Debug("Mapped tabular rows to transactions",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions
}
