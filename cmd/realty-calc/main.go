package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/realty-calc/internal/config"
	"github.com/iwvelando/realty-calc/internal/report"
	"github.com/iwvelando/realty-calc/pkg/constants"
	"github.com/iwvelando/realty-calc/pkg/output"
	"github.com/iwvelando/realty-calc/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagConfig       string
	flagEnvFile      string
	flagOutputFormat string
	flagLogLevel     string
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	// Results go to stdout, so logs must not.
	zapConfig.OutputPaths = []string{"stderr"}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// run loads the configuration, computes the requested sections and writes
// them to w.
func run(w io.Writer, sections ...report.Section) error {
	if err := config.LoadEnvironment(flagEnvFile); err != nil {
		return err
	}

	conf, err := config.LoadConfiguration(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", flagConfig, err)
	}

	logger, err := initializeLogger(conf.Logging, flagLogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if flagOutputFormat != "" {
		outputFormat = flagOutputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	result, err := report.Build(logger, *conf, sections...)
	if err != nil {
		logger.Error("failed to compute results",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}

	return output.Render(w, outputFormat, result)
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "realty-calc",
		Short: "Mortgage, buy/sell, budget and cashflow calculators",
		Long: "Run the real estate calculators over a YAML configuration. Without a " +
			"subcommand every calculator is run.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", constants.DefaultEnvFile, "dotenv file with REALTY_CALC_* overrides")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output-format", "o", "", "type of output override: pretty, csv, yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		newSectionCommand(report.SectionMortgage, "Payment, payoff chart and breakdown of a mortgage"),
		newSectionCommand(report.SectionBuySell, "Net proceeds of a sale and the mortgage for the next purchase"),
		newSectionCommand(report.SectionBudget, "Income and expense totals scaled to a display period"),
		newSectionCommand(report.SectionCashflow, "Income and expense totals as entered"),
	)
	return rootCmd
}

func newSectionCommand(section report.Section, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(section),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), section)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
