package lineparser

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/statement-analyzer/internal/models"
	"fjacquet/statement-analyzer/internal/patterns"
	"fjacquet/statement-analyzer/internal/pdfextract"
)

// FallbackParser is the looser single-line heuristic used when line
// reconstruction produced too little. It works on the flattened document
// text instead of the reconstructed lines, requires a date and an amount
// on the same line, and never applies the balance-gap heuristic (with no
// lookahead there is not enough context for it). It trades precision for
// recall; it is a safety net, not a primary path.
type FallbackParser struct{}

// NewFallbackParser creates a fallback parser.
func NewFallbackParser() *FallbackParser {
	return &FallbackParser{}
}

func (p *FallbackParser) Name() string { return "flat-text" }

// Parse scans each non-empty line of the flat text independently.
func (p *FallbackParser) Parse(doc *pdfextract.Document) []models.Transaction {
	var transactions []models.Transaction

	for _, raw := range strings.Split(doc.FlatText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		dates := patterns.FindDates(line)
		amounts := patterns.FindAmounts(line)
		if len(dates) == 0 || len(amounts) == 0 {
			continue
		}
		date := dates[0]

		var withdrawal, deposit, balance decimal.Decimal
		switch {
		case len(amounts) >= 3:
			withdrawal, deposit, balance = amounts[0], amounts[1], amounts[2]
		case len(amounts) == 2:
			withdrawal, deposit = amounts[0], amounts[1]
		default:
			deposit = amounts[0]
		}

		transactions = append(transactions, models.NewTransaction(
			date,
			patterns.CleanNarration(line, date),
			patterns.FindReference(line),
			date,
			withdrawal, deposit, balance,
		))
	}

	return transactions
}
