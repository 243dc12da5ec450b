package models

import "github.com/shopspring/decimal"

// CanonicalColumns is the fixed field-name list reported as the source
// columns for page-derived input, so a generic exporter can render
// page-derived and tabular results uniformly.
var CanonicalColumns = []string{
	"date", "narration", "chqRefNo", "valueDt",
	"withdrawalAmt", "depositAmt", "closingBalance",
	"amount", "type", "absAmount",
}

// Summary holds the derived totals for one ingested statement.
type Summary struct {
	TotalTransactions  int             `json:"totalTransactions"`
	TotalCredits       decimal.Decimal `json:"totalCredits"`
	TotalDebits        decimal.Decimal `json:"totalDebits"`
	NetAmount          decimal.Decimal `json:"netAmount"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
}

// MonthlyBucket accumulates the credit and debit volume of one calendar
// month. Buckets are created lazily and only ever grow.
type MonthlyBucket struct {
	Credits decimal.Decimal `json:"credits"`
	Debits  decimal.Decimal `json:"debits"`
	Count   int             `json:"count"`
}

// AnalysisResult is the complete output of one ingestion: the canonical
// transactions, their summary, the per-month breakdown keyed by a
// "January 2006" label, and the source's column names. It is built once
// and read-only to downstream consumers.
type AnalysisResult struct {
	Transactions     []Transaction            `json:"transactions"`
	Summary          Summary                  `json:"summary"`
	MonthlyBreakdown map[string]MonthlyBucket `json:"monthlyBreakdown"`
	OriginalColumns  []string                 `json:"originalColumns"`
}
