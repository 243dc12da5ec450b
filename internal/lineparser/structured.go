package lineparser

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/statement-analyzer/internal/models"
	"fjacquet/statement-analyzer/internal/patterns"
	"fjacquet/statement-analyzer/internal/pdfextract"
)

// minLineLength filters out fragments too short to be a transaction line.
const minLineLength = 5

// StructuredParser walks the reconstructed lines looking for lines that
// open with a date, then collects amount tokens from a bounded lookahead
// window and disambiguates them into withdrawal, deposit and closing
// balance by count and magnitude.
type StructuredParser struct {
	lookaheadLines  int
	balanceGapRatio decimal.Decimal
}

// NewStructuredParser creates a structured parser. lookaheadLines is how
// many lines past the date-anchored line join the amount window;
// balanceGapRatio is the relative gap above which, on a two-amount
// window, the larger amount is treated as the closing balance.
func NewStructuredParser(lookaheadLines int, balanceGapRatio float64) *StructuredParser {
	return &StructuredParser{
		lookaheadLines:  lookaheadLines,
		balanceGapRatio: decimal.NewFromFloat(balanceGapRatio),
	}
}

func (p *StructuredParser) Name() string { return "structured" }

// Parse extracts transactions from the reconstructed lines. Lines that
// do not look like a transaction start are skipped silently; headers,
// footers and running totals are expected noise, not errors.
func (p *StructuredParser) Parse(doc *pdfextract.Document) []models.Transaction {
	var transactions []models.Transaction

	for i := 0; i < len(doc.Lines); i++ {
		line := strings.TrimSpace(doc.Lines[i])
		if len(line) < minLineLength {
			continue
		}

		date, ok := patterns.MatchLeadingDate(line)
		if !ok {
			continue
		}

		// The amounts of one record often wrap onto following lines, so
		// scan a window of the current line plus the next few.
		window := line
		for j := 1; j <= p.lookaheadLines && i+j < len(doc.Lines); j++ {
			window += " " + doc.Lines[i+j]
		}

		amounts := patterns.FindAmounts(window)
		if len(amounts) == 0 {
			continue
		}

		withdrawal, deposit, balance := p.assignAmounts(amounts)

		transactions = append(transactions, models.NewTransaction(
			date,
			patterns.CleanNarration(line, date),
			patterns.FindReference(window),
			date,
			withdrawal, deposit, balance,
		))
	}

	return transactions
}

// assignAmounts maps the amount tokens, in occurrence order, onto the
// withdrawal/deposit/closing-balance roles.
func (p *StructuredParser) assignAmounts(amounts []decimal.Decimal) (withdrawal, deposit, balance decimal.Decimal) {
	switch {
	case len(amounts) >= 3:
		// Statement column order: withdrawal, deposit, closing balance.
		return amounts[0], amounts[1], amounts[2]

	case len(amounts) == 2:
		first, second := amounts[0], amounts[1]
		larger := first
		if second.GreaterThan(larger) {
			larger = second
		}
		gap := first.Sub(second).Abs()
		if gap.GreaterThan(larger.Mul(p.balanceGapRatio)) {
			// Far apart: the larger one is the running balance.
			if first.GreaterThan(second) {
				return decimal.Zero, second, first
			}
			return first, decimal.Zero, second
		}
		return first, second, decimal.Zero

	default:
		return decimal.Zero, amounts[0], decimal.Zero
	}
}
