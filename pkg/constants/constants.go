// Package constants provides shared constants for the realty-calc application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// BiweeklyPeriodsPerYear is the number of bi-weekly payments in a year
	BiweeklyPeriodsPerYear = 26

	// WeeklyPeriodsPerYear is the number of weekly payments in a year
	WeeklyPeriodsPerYear = 52

	// MonthsPerQuarter is the number of months in a quarter
	MonthsPerQuarter = 3

	// DefaultAmortizationYears is used when the amortization label is missing or unknown
	DefaultAmortizationYears = 25

	// MaxAmortizationYears is the longest term the engine will compute
	MaxAmortizationYears = 100

	// SimulationCapMultiplier bounds the accelerated payoff simulation to this
	// many times the nominal amortization term.
	SimulationCapMultiplier = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultEnvFile is the optional dotenv file loaded before the configuration
	DefaultEnvFile = ".env"
)

// Validation constants
const (
	// SettledBalanceRatio is the share of the original principal below which a
	// remaining balance is treated as paid off
	SettledBalanceRatio = 1e-9

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
