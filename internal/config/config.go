// Package config provides Viper-based hierarchical configuration for the
// statement analyzer: defaults, an optional YAML config file, environment
// variables, and .env loading.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Parser struct {
		PDF struct {
			// LineTolerance is the maximum vertical distance, in PDF
			// units, between two tokens considered to share a line.
			LineTolerance float64 `mapstructure:"line_tolerance" yaml:"line_tolerance"`
			// LookaheadLines is how many lines past a date-anchored line
			// are scanned for amounts.
			LookaheadLines int `mapstructure:"lookahead_lines" yaml:"lookahead_lines"`
			// MinStructured is the transaction count the structured
			// parser must reach before its output is accepted; below it
			// the flat-text fallback runs instead.
			MinStructured int `mapstructure:"min_structured" yaml:"min_structured"`
			// BalanceGapRatio is the relative gap above which, on a
			// two-amount line, the larger amount is taken to be the
			// closing balance rather than a second flow.
			BalanceGapRatio float64 `mapstructure:"balance_gap_ratio" yaml:"balance_gap_ratio"`
		} `mapstructure:"pdf" yaml:"pdf"`
	} `mapstructure:"parser" yaml:"parser"`
}

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file when one exists in
// the working directory. Missing files are fine; real env wins regardless.
func LoadEnv() {
	envOnce.Do(func() {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return
		}
		if err := godotenv.Load(".env"); err != nil {
			logrus.Warnf("Error loading .env file: %v", err)
		}
	})
}

// Load initializes the hierarchical configuration: defaults, then an
// optional config.yaml, then STMT_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-analyzer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("parser.pdf.line_tolerance", 5.0)
	v.SetDefault("parser.pdf.lookahead_lines", 2)
	v.SetDefault("parser.pdf.min_structured", 5)
	v.SetDefault("parser.pdf.balance_gap_ratio", 0.1)
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("invalid csv delimiter: %q (must be a single character)", config.CSV.Delimiter)
	}
	if config.Parser.PDF.LineTolerance <= 0 {
		return fmt.Errorf("parser.pdf.line_tolerance must be positive")
	}
	if config.Parser.PDF.LookaheadLines < 0 {
		return fmt.Errorf("parser.pdf.lookahead_lines must not be negative")
	}
	if config.Parser.PDF.MinStructured < 1 {
		return fmt.Errorf("parser.pdf.min_structured must be at least 1")
	}
	if config.Parser.PDF.BalanceGapRatio <= 0 || config.Parser.PDF.BalanceGapRatio >= 1 {
		return fmt.Errorf("parser.pdf.balance_gap_ratio must be between 0 and 1")
	}
	return nil
}
