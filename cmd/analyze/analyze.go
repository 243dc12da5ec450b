// Package analyze implements the analyze command: ingest one statement
// file and report the analysis.
package analyze

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/statement-analyzer/internal/common"
	"fjacquet/statement-analyzer/internal/config"
	"fjacquet/statement-analyzer/internal/engine"
	"fjacquet/statement-analyzer/internal/logging"
	"fjacquet/statement-analyzer/internal/models"
	"fjacquet/statement-analyzer/internal/parsererror"
)

var (
	log = logrus.New()

	// Cfg is injected by the root command after configuration loads.
	Cfg *config.Config

	inputFile  string
	outputFile string
	kindFlag   string
	password   string
)

// Cmd is the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a bank statement file",
	Long: `Analyze a bank statement (CSV, XLSX or PDF) and print summary
statistics. Use --output to also write the canonical transaction CSV.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		log.Fatalf("Error reading input file: %v", err)
	}

	kind := engine.Kind(kindFlag)
	if kindFlag == "" {
		kind, err = engine.KindFromPath(inputFile)
		if err != nil {
			log.Fatalf("Cannot determine file kind: %v", err)
		}
	}

	eng := engine.New(Cfg, logging.GetLogger().WithField(logging.FieldFile, inputFile))
	result, err := eng.Ingest(data, kind, password)
	if err != nil {
		if parsererror.IsPasswordRetryable(err) {
			log.Fatalf("%v - re-run with --password to supply the document password", err)
		}
		log.Fatalf("Error analyzing statement: %v", err)
	}

	printSummary(result)

	if outputFile != "" {
		common.SetDelimiter(rune(Cfg.CSV.Delimiter[0]))
		if err := common.WriteTransactionsToCSV(result.Transactions, outputFile); err != nil {
			log.Fatalf("Error writing CSV: %v", err)
		}
		log.Infof("Wrote %d transactions to %s", len(result.Transactions), outputFile)
	}
}

func printSummary(result *models.AnalysisResult) {
	s := result.Summary
	fmt.Printf("Transactions:        %d\n", s.TotalTransactions)
	fmt.Printf("Total credits:       %s\n", s.TotalCredits.StringFixed(2))
	fmt.Printf("Total debits:        %s\n", s.TotalDebits.StringFixed(2))
	fmt.Printf("Net amount:          %s\n", s.NetAmount.StringFixed(2))
	fmt.Printf("Average transaction: %s\n", s.AverageTransaction.StringFixed(2))

	if len(result.MonthlyBreakdown) == 0 {
		return
	}
	fmt.Println("\nMonthly breakdown:")
	months := make([]string, 0, len(result.MonthlyBreakdown))
	for month := range result.MonthlyBreakdown {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		bucket := result.MonthlyBreakdown[month]
		fmt.Printf("  %-16s credits %s  debits %s  (%d transactions)\n",
			month,
			bucket.Credits.StringFixed(2),
			bucket.Debits.StringFixed(2),
			bucket.Count)
	}
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input statement file (required)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Optional canonical CSV output file")
	Cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "File kind: csv, xlsx or pdf (inferred from extension when omitted)")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Password for protected PDF documents")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		log.Warnf("Failed to mark input flag required: %v", err)
	}
}
