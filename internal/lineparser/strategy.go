// Package lineparser recovers transactions from the reconstructed lines
// of a page-oriented document. Two strategies run in decreasing order of
// precision: the structured parser works on position-reconstructed lines,
// and a flat-text fallback takes over when the structured pass recovers
// too few records (the signal that layout reconstruction failed, e.g. on
// multi-column statements).
package lineparser

import (
	"fjacquet/statement-analyzer/internal/logging"
	"fjacquet/statement-analyzer/internal/models"
	"fjacquet/statement-analyzer/internal/pdfextract"
)

// Strategy is one candidate way of recovering transactions from an
// extracted document. Strategies are pure; the selector owns ordering.
type Strategy interface {
	Name() string
	Parse(doc *pdfextract.Document) []models.Transaction
}

// Selector runs strategies in order and accepts the first output that
// reaches minAccept transactions. When none clears the gate, the last
// strategy's output is returned as-is; deciding whether zero transactions
// is an error belongs to the aggregator.
type Selector struct {
	strategies []Strategy
	minAccept  int
	logger     logging.Logger
}

// NewSelector builds the standard two-tier selector: structured first,
// flat-text fallback second.
func NewSelector(lookaheadLines int, balanceGapRatio float64, minAccept int, logger logging.Logger) *Selector {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Selector{
		strategies: []Strategy{
			NewStructuredParser(lookaheadLines, balanceGapRatio),
			NewFallbackParser(),
		},
		minAccept: minAccept,
		logger:    logger,
	}
}

// Parse runs the strategy list against the document.
func (s *Selector) Parse(doc *pdfextract.Document) []models.Transaction {
	var last []models.Transaction
	for _, strategy := range s.strategies {
		last = strategy.Parse(doc)
		s.logger.Debug("Parsing strategy finished",
			logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
			logging.Field{Key: logging.FieldCount, Value: len(last)})
		if len(last) >= s.minAccept {
			return last
		}
	}
	return last
}
