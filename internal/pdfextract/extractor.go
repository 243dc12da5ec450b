// Package pdfextract turns a page-oriented PDF into reading-order lines
// using positioned text tokens.
package pdfextract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"

	"fjacquet/statement-analyzer/internal/logging"
	"fjacquet/statement-analyzer/internal/parsererror"
)

// Document is the extraction output: reconstructed lines in page order,
// plus the flattened whole-document text for the fallback parser. The
// flat text preserves the raw content-stream token order, one page per
// line, mirroring what a plain text dump of the document looks like.
type Document struct {
	Lines    []string
	FlatText string
}

// Extractor extracts positioned text from PDF documents.
type Extractor struct {
	tolerance float64
	logger    logging.Logger
}

// NewExtractor creates an Extractor with the given same-line Y tolerance.
func NewExtractor(tolerance float64, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{tolerance: tolerance, logger: logger}
}

// Extract opens the document and reconstructs its lines. An encrypted
// document without a password yields ErrPasswordRequired; a wrong
// password yields ErrPasswordIncorrect. Both are retryable by re-running
// with a new password; any other failure is terminal for this document.
func (e *Extractor) Extract(data []byte, password string) (*Document, error) {
	reader, err := e.open(data, password)
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	e.logger.Debug("Opened PDF document",
		logging.Field{Key: logging.FieldCount, Value: numPages})

	// Pages are independent, so extract tokens concurrently; the
	// index-addressed slice keeps the merge in page order.
	pageTokens := make([][]Token, numPages)
	var wg sync.WaitGroup
	for i := 1; i <= numPages; i++ {
		wg.Add(1)
		go func(pageNum int) {
			defer wg.Done()
			tokens, err := extractPageTokens(reader, pageNum)
			if err != nil {
				e.logger.WithError(err).Warn("Skipping unreadable page",
					logging.Field{Key: logging.FieldPage, Value: pageNum})
				return
			}
			pageTokens[pageNum-1] = tokens
		}(i)
	}
	wg.Wait()

	doc := &Document{}
	var flat strings.Builder
	for _, tokens := range pageTokens {
		doc.Lines = append(doc.Lines, ClusterLines(tokens, e.tolerance)...)

		texts := make([]string, len(tokens))
		for i, tok := range tokens {
			texts[i] = tok.Text
		}
		flat.WriteString(strings.Join(texts, " "))
		flat.WriteString("\n")
	}
	doc.FlatText = flat.String()

	e.logger.Debug("Reconstructed lines from PDF",
		logging.Field{Key: logging.FieldCount, Value: len(doc.Lines)})
	return doc, nil
}

func (e *Extractor) open(data []byte, password string) (*pdf.Reader, error) {
	var pw func() string
	if password != "" {
		supplied := false
		pw = func() string {
			if supplied {
				return ""
			}
			supplied = true
			return password
		}
	}

	reader, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), pw)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			if password == "" {
				return nil, parsererror.ErrPasswordRequired
			}
			return nil, parsererror.ErrPasswordIncorrect
		}
		return nil, &parsererror.MalformedSourceError{Format: "PDF", Err: err}
	}
	return reader, nil
}

// extractPageTokens reads the positioned text of a single page. The pdf
// library panics on some malformed content streams, so the call is
// guarded with recover.
func extractPageTokens(reader *pdf.Reader, pageNum int) (tokens []Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = fmt.Errorf("page content crashed: %v", r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	tokens = make([]Token, 0, len(content.Text))
	for _, t := range content.Text {
		tokens = append(tokens, Token{
			Text:   t.S,
			X:      t.X,
			Y:      t.Y,
			Width:  t.W,
			Height: t.FontSize,
		})
	}
	return tokens, nil
}
