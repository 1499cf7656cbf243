// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/iwvelando/realty-calc/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables overriding config keys,
// e.g. REALTY_CALC_MORTGAGE_AMOUNT.
const EnvPrefix = "REALTY_CALC"

// Configuration holds all configuration for realty-calc. Amounts are kept as
// entered so that currency formatting such as "$1,500" is accepted; they are
// sanitized when converted to calculator inputs.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Mortgage MortgageConfig `yaml:"mortgage"`
	BuySell  BuySellConfig  `yaml:"buySell"`
	Budget   BudgetConfig   `yaml:"budget"`
	Cashflow CashflowConfig `yaml:"cashflow"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// MortgageConfig holds the mortgage calculator inputs.
type MortgageConfig struct {
	Amount                string
	InterestRate          string
	PaymentFrequency      string // monthly, biweekly, weekly
	Amortization          string // fiveYear ... thirtyYear, or a number of years
	StartDate             string // optional YYYY-MM of the first payment
	ExtraRecurringPayment RecurringPaymentConfig
	ExtraOneTimePayment   OneTimePaymentConfig
}

// RecurringPaymentConfig is an extra payment made on its own schedule.
type RecurringPaymentConfig struct {
	Amount    string
	Frequency string
}

// OneTimePaymentConfig is a lump sum applied at the start of a year of the loan.
type OneTimePaymentConfig struct {
	Amount string
	Year   string
}

// BuySellConfig holds the buy/sell calculator inputs.
type BuySellConfig struct {
	Sell SellConfig
	Buy  BuyConfig
}

// SellConfig holds the figures of a sale.
type SellConfig struct {
	Price             string
	MortgageBalance   string
	RealtorFeePercent string
	LegalFees         string
	OtherCosts        string
}

// BuyConfig holds the figures of a purchase. UseSellProceeds defaults to true.
type BuyConfig struct {
	Price           string
	DownPayment     string
	UseSellProceeds *bool
	MortgageRate    string
	Amortization    string
	ClosingCosts    string
}

// BudgetConfig holds budget items and the period totals are shown in.
type BudgetConfig struct {
	DisplayPeriod string // monthly, quarterly, yearly
	Items         []ItemConfig
}

// CashflowConfig holds cashflow items.
type CashflowConfig struct {
	Items []ItemConfig
}

// ItemConfig is an income or expense line.
type ItemConfig struct {
	Name       string
	Amount     string
	Type       string // income, expense
	TimePeriod string // monthly, yearly, annual; budget only
}

// setDefaults registers the values the calculators open with.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("output.format", constants.OutputFormatPretty)

	v.SetDefault("mortgage.amount", "100000")
	v.SetDefault("mortgage.interestRate", "4.25")
	v.SetDefault("mortgage.paymentFrequency", "monthly")
	v.SetDefault("mortgage.amortization", "twentyFiveYear")
	v.SetDefault("mortgage.extraRecurringPayment.frequency", "monthly")

	v.SetDefault("buySell.sell.price", "900000")
	v.SetDefault("buySell.sell.mortgageBalance", "500000")
	v.SetDefault("buySell.sell.realtorFeePercent", "5")
	v.SetDefault("buySell.sell.legalFees", "1500")
	v.SetDefault("buySell.sell.otherCosts", "2000")
	v.SetDefault("buySell.buy.price", "1000000")
	v.SetDefault("buySell.buy.mortgageRate", "4")
	v.SetDefault("buySell.buy.amortization", "25")
	v.SetDefault("buySell.buy.closingCosts", "2000")

	v.SetDefault("budget.displayPeriod", "monthly")
}

// LoadEnvironment loads variables from a dotenv file so they can override
// configuration keys. A missing file is not an error.
func LoadEnvironment(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load environment file %s: %w", path, err)
	}
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}
