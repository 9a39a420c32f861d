// Package config defines the data structures related to an affordability
// profile and includes functions for loading and validating the profile.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds a complete affordability profile: the item ledger,
// financing choices, policy knobs, and runtime settings.
type Configuration struct {
	Categories []Category    `yaml:"categories"`
	Mortgage   Mortgage      `yaml:"mortgage"`
	Policy     Policy        `yaml:"policy,omitempty"`
	Property   *Property     `yaml:"property,omitempty"`
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Category kinds route item groups into the solver's aggregates. Kind is
// engine-facing; Type remains a presentation hint.
const (
	KindIncome         = "income"
	KindExpenses       = "expenses"
	KindFixedDebts     = "fixedDebts"
	KindFutureIncome   = "futureIncome"
	KindFutureExpenses = "futureExpenses"
	KindHome           = "home" // prospective-home items, informational only
)

// Category is a named grouping of ledger items.
type Category struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Type  string `yaml:"type,omitempty"` // presentation hint: input, radio, default
	Kind  string `yaml:"kind,omitempty"`
	Items []Item `yaml:"items"`
}

// Item mirrors the ledger item shape in configuration form.
type Item struct {
	ID          string  `yaml:"id"`
	Label       string  `yaml:"label"`
	Amount      float64 `yaml:"amount"`
	Type        string  `yaml:"type"`      // income, expense, info
	Frequency   string  `yaml:"frequency"` // monthly, annual, one-time
	Active      bool    `yaml:"active"`
	Editable    bool    `yaml:"editable,omitempty"`
	IncomeEntry string  `yaml:"incomeEntry,omitempty"` // gross, net

	WithholdingTaxPct        float64 `yaml:"withholdingTaxPct,omitempty"`
	Withholding401kPct       float64 `yaml:"withholding401kPct,omitempty"`
	WithholdingHealthcarePct float64 `yaml:"withholdingHealthcarePct,omitempty"`
	WithholdingHSAPct        float64 `yaml:"withholdingHsaPct,omitempty"`
	WithholdingOtherPct      float64 `yaml:"withholdingOtherPct,omitempty"`
}

// Option is a single financing choice.
type Option struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label,omitempty"`
	Value  float64 `yaml:"value"`
	Active bool    `yaml:"active"`
}

// OptionGroup is a radio-style grouping of financing options.
type OptionGroup struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name,omitempty"`
	Type    string   `yaml:"type,omitempty"`
	Options []Option `yaml:"options"`
}

// Mortgage holds the financing side of the profile.
type Mortgage struct {
	// ReferenceRate is today's market rate from the external rate source.
	// Rate options are generated around it when none are listed explicitly.
	ReferenceRate         float64     `yaml:"referenceRate,omitempty"`
	CreditScore           int         `yaml:"creditScore,omitempty"`
	DownPaymentSources    Category    `yaml:"downPaymentSources"`
	DownPaymentPercentage OptionGroup `yaml:"downPaymentPercentage,omitempty"`
	TermOptions           OptionGroup `yaml:"termOptions,omitempty"`
	RateOptions           OptionGroup `yaml:"rateOptions,omitempty"`
}

// Policy holds the affordability policy knobs. Zero values fall back to the
// package defaults when the inputs are assembled.
type Policy struct {
	HousingPercentage         float64 `yaml:"housingPercentage,omitempty"`
	DownPaymentPercentage     float64 `yaml:"downPaymentPercentage,omitempty"`
	InsuranceRatePct          float64 `yaml:"insuranceRatePct,omitempty"`
	PropertyTaxRatePct        float64 `yaml:"propertyTaxRatePct,omitempty"`
	DTIBasis                  string  `yaml:"dtiBasis,omitempty"` // gross, takeHome
	DTIWarningThreshold       float64 `yaml:"dtiWarningThreshold,omitempty"`
	ExcessDownPaymentStrategy string  `yaml:"excessDownPaymentStrategy,omitempty"`
}

// Property describes a target or candidate home.
type Property struct {
	Price              float64 `yaml:"price"`
	Location           string  `yaml:"location,omitempty"`
	PropertyTaxRatePct float64 `yaml:"propertyTaxRatePct,omitempty"`
	HOAMonthly         float64 `yaml:"hoaMonthly,omitempty"`
	InsuranceAnnual    float64 `yaml:"insuranceAnnual,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// profile there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills in the seeded category set and financing groups for
// any section the profile omits.
func (conf *Configuration) ApplyDefaults() {
	if len(conf.Categories) == 0 {
		conf.Categories = DefaultCategories()
	}
	if len(conf.Mortgage.DownPaymentSources.Items) == 0 {
		conf.Mortgage.DownPaymentSources = DefaultDownPaymentSources()
	}
	if len(conf.Mortgage.DownPaymentPercentage.Options) == 0 {
		conf.Mortgage.DownPaymentPercentage = DefaultDownPaymentPercentages()
	}
	if len(conf.Mortgage.TermOptions.Options) == 0 {
		conf.Mortgage.TermOptions = DefaultTermOptions()
	}
}
