// Package root contains the root command for the application.
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/statement-analyzer/cmd/analyze"
	"fjacquet/statement-analyzer/internal/config"
	"fjacquet/statement-analyzer/internal/logging"
)

var log = logrus.New()

// Cmd is the root command.
var Cmd = &cobra.Command{
	Use:   "statement-analyzer",
	Short: "Analyze bank statements from CSV, Excel or PDF files.",
	Long: `statement-analyzer ingests a bank statement in CSV, Excel or PDF form,
recovers the transactions without assuming a fixed input schema, and
reports summary statistics and a monthly breakdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Info("Welcome to statement-analyzer!")
		log.Info("Use --help to see available commands")
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()

		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logging.SetDefault(logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
		analyze.Cfg = cfg
	},
}

// Execute runs the root command.
func Execute() {
	if err := Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	Cmd.AddCommand(analyze.Cmd)
}
