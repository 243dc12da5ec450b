// Package common provides the canonical CSV writer shared with the
// export collaborator.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/statement-analyzer/internal/logging"
	"fjacquet/statement-analyzer/internal/models"
)

// SetDelimiter configures the delimiter used for canonical CSV output.
func SetDelimiter(delim rune) {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delim
		return gocsv.NewSafeCSVWriter(w)
	})
}

// WriteTransactionsToCSV writes transactions to a CSV file in the
// canonical column layout. All exports go through this function so the
// output format stays consistent.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log := logging.GetLogger().WithField(logging.FieldFile, csvFile)
	log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	return nil
}
