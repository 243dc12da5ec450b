// Package analyzer reduces a canonical transaction sequence into the
// analysis result: summary totals and the per-month breakdown.
package analyzer

import (
	"github.com/shopspring/decimal"

	"fjacquet/statement-analyzer/internal/dateutils"
	"fjacquet/statement-analyzer/internal/logging"
	"fjacquet/statement-analyzer/internal/models"
	"fjacquet/statement-analyzer/internal/parsererror"
)

// Analyze folds the transactions into an AnalysisResult. The reduction is
// pure: transactions are only read, never modified. An empty input is an
// error, not an empty result, because the operator cannot tell an empty
// analysis apart from a parsing failure.
func Analyze(transactions []models.Transaction, originalColumns []string, logger logging.Logger) (*models.AnalysisResult, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(transactions) == 0 {
		return nil, parsererror.ErrNoTransactions
	}

	totalCredits := decimal.Zero
	totalDebits := decimal.Zero
	monthly := make(map[string]models.MonthlyBucket)

	for _, tx := range transactions {
		if tx.IsCredit() {
			totalCredits = totalCredits.Add(tx.AbsAmount)
		} else {
			totalDebits = totalDebits.Add(tx.AbsAmount)
		}

		date, err := dateutils.ParseDate(tx.Date)
		if err != nil {
			// Unparsable dates stay in the transaction list but
			// contribute to no bucket.
			logger.Debug("Skipping transaction for monthly breakdown",
				logging.Field{Key: logging.FieldReason, Value: err.Error()})
			continue
		}

		month := dateutils.MonthLabel(date)
		bucket := monthly[month]
		if tx.IsCredit() {
			bucket.Credits = bucket.Credits.Add(tx.AbsAmount)
		} else {
			bucket.Debits = bucket.Debits.Add(tx.AbsAmount)
		}
		bucket.Count++
		monthly[month] = bucket
	}

	count := decimal.NewFromInt(int64(len(transactions)))
	return &models.AnalysisResult{
		Transactions: transactions,
		Summary: models.Summary{
			TotalTransactions:  len(transactions),
			TotalCredits:       totalCredits,
			TotalDebits:        totalDebits,
			NetAmount:          totalCredits.Sub(totalDebits),
			AverageTransaction: totalCredits.Add(totalDebits).Div(count),
		},
		MonthlyBreakdown: monthly,
		OriginalColumns:  originalColumns,
	}, nil
}
