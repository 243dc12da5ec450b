// Package engine exposes the ingestion boundary: raw file bytes in, a
// complete AnalysisResult or an error out. Nothing is cached across
// ingestions and no partial result is ever returned.
package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/statement-analyzer/internal/analyzer"
	"fjacquet/statement-analyzer/internal/config"
	"fjacquet/statement-analyzer/internal/lineparser"
	"fjacquet/statement-analyzer/internal/logging"
	"fjacquet/statement-analyzer/internal/models"
	"fjacquet/statement-analyzer/internal/parsererror"
	"fjacquet/statement-analyzer/internal/pdfextract"
	"fjacquet/statement-analyzer/internal/tabular"
)

// Kind identifies the accepted statement file formats.
type Kind string

const (
	KindCSV         Kind = "csv"
	KindSpreadsheet Kind = "xlsx"
	KindPDF         Kind = "pdf"
)

// KindFromPath infers the file kind from a filename extension.
func KindFromPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return KindCSV, nil
	case ".xlsx", ".xls":
		return KindSpreadsheet, nil
	case ".pdf":
		return KindPDF, nil
	default:
		return "", fmt.Errorf("%w: %s", parsererror.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Engine runs the ingestion pipeline. It holds configuration only; every
// call to Ingest is independent.
type Engine struct {
	cfg    *config.Config
	logger logging.Logger
}

// New creates an Engine with the given configuration.
func New(cfg *config.Config, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Ingest parses the raw file bytes as the given kind and returns the
// analysis. password applies to page-oriented documents only; after a
// password error the caller re-invokes Ingest with a new password and
// extraction restarts from scratch.
func (e *Engine) Ingest(data []byte, kind Kind, password string) (*models.AnalysisResult, error) {
	log := e.logger.WithField(logging.FieldKind, string(kind))

	switch kind {
	case KindCSV:
		table, err := tabular.ReadCSV(data, rune(e.cfg.CSV.Delimiter[0]))
		if err != nil {
			return nil, err
		}
		return e.analyzeTable(table, log)

	case KindSpreadsheet:
		table, err := tabular.ReadWorkbook(data)
		if err != nil {
			return nil, err
		}
		return e.analyzeTable(table, log)

	case KindPDF:
		return e.ingestPDF(data, password, log)

	default:
		return nil, fmt.Errorf("%w: %s", parsererror.ErrUnsupportedFormat, kind)
	}
}

func (e *Engine) analyzeTable(table *tabular.Table, log logging.Logger) (*models.AnalysisResult, error) {
	if len(table.Rows) == 0 {
		return nil, parsererror.ErrNoDataFound
	}
	log.Info("Read tabular statement",
		logging.Field{Key: logging.FieldCount, Value: len(table.Rows)})

	transactions := tabular.MapTransactions(table, log)
	return analyzer.Analyze(transactions, table.Columns, log)
}

func (e *Engine) ingestPDF(data []byte, password string, log logging.Logger) (*models.AnalysisResult, error) {
	pdfCfg := e.cfg.Parser.PDF

	extractor := pdfextract.NewExtractor(pdfCfg.LineTolerance, log)
	doc, err := extractor.Extract(data, password)
	if err != nil {
		return nil, err
	}

	selector := lineparser.NewSelector(
		pdfCfg.LookaheadLines,
		pdfCfg.BalanceGapRatio,
		pdfCfg.MinStructured,
		log,
	)
	transactions := selector.Parse(doc)
	log.Info("Parsed page-oriented statement",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return analyzer.Analyze(transactions, models.CanonicalColumns, log)
}
