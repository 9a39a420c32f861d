package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/homeready/homeready/internal/mortgage"
)

const testProfileYAML = `
categories:
  - id: income
    name: Income
    kind: income
    items:
      - id: salary
        label: Salary
        amount: 100000
        type: income
        frequency: annual
        active: true
        incomeEntry: net
  - id: monthly-expenses
    name: Monthly Expenses
    kind: expenses
    items:
      - id: rent
        label: Rent
        amount: 3000
        type: expense
        frequency: monthly
        active: true
  - id: fixed-debts
    name: Fixed Debts
    kind: fixedDebts
    items:
      - id: car-payment
        label: Car payment
        amount: 500
        type: expense
        frequency: monthly
        active: true
mortgage:
  referenceRate: 6.5
  downPaymentSources:
    id: down-payment-sources
    name: Down Payment Sources
    items:
      - id: savings
        label: Savings
        amount: 50000
        type: income
        frequency: one-time
        active: true
policy:
  housingPercentage: 28
logging:
  level: debug
  format: console
`

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test profile: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeProfile(t, testProfileYAML))
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error = %v", err)
	}

	if len(conf.Categories) != 3 {
		t.Errorf("len(Categories) = %d, expected 3", len(conf.Categories))
	}
	if conf.Mortgage.ReferenceRate != 6.5 {
		t.Errorf("ReferenceRate = %v, expected 6.5", conf.Mortgage.ReferenceRate)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, expected debug", conf.Logging.Level)
	}

	// Omitted financing groups are seeded from the defaults
	if len(conf.Mortgage.TermOptions.Options) == 0 {
		t.Error("TermOptions not seeded from defaults")
	}
	if len(conf.Mortgage.DownPaymentPercentage.Options) == 0 {
		t.Error("DownPaymentPercentage not seeded from defaults")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfiguration() expected error for missing file")
	}
}

func TestBuildInputs(t *testing.T) {
	conf, err := LoadConfiguration(writeProfile(t, testProfileYAML))
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error = %v", err)
	}

	inputs, err := conf.BuildInputs(nil)
	if err != nil {
		t.Fatalf("BuildInputs() unexpected error = %v", err)
	}

	if math.Abs(inputs.GrossMonthlyIncome-8333.33) > 0.01 {
		t.Errorf("GrossMonthlyIncome = %.2f, expected 8333.33", inputs.GrossMonthlyIncome)
	}
	if math.Abs(inputs.TakeHomeMonthlyIncome-8333.33) > 0.01 {
		t.Errorf("TakeHomeMonthlyIncome = %.2f, expected 8333.33", inputs.TakeHomeMonthlyIncome)
	}
	if math.Abs(inputs.MonthlyExpenses-3000) > 0.01 {
		t.Errorf("MonthlyExpenses = %.2f, expected 3000", inputs.MonthlyExpenses)
	}
	if math.Abs(inputs.FixedDebts-500) > 0.01 {
		t.Errorf("FixedDebts = %.2f, expected 500", inputs.FixedDebts)
	}
	if math.Abs(inputs.DownPaymentSources-50000) > 0.01 {
		t.Errorf("DownPaymentSources = %.2f, expected 50000", inputs.DownPaymentSources)
	}
	// Rate options generated around the reference rate; market rate active
	if math.Abs(inputs.InterestRate-6.5) > 0.001 {
		t.Errorf("InterestRate = %v, expected 6.5", inputs.InterestRate)
	}
	// Default term group selects 30 years
	if inputs.LoanTermYears != 30 {
		t.Errorf("LoanTermYears = %d, expected 30", inputs.LoanTermYears)
	}
	// Default down-payment percentage group selects 20
	if math.Abs(inputs.DownPaymentPercentage-20) > 0.001 {
		t.Errorf("DownPaymentPercentage = %v, expected 20", inputs.DownPaymentPercentage)
	}
}

func TestBuildInputsFailsClosedWithoutRate(t *testing.T) {
	conf := &Configuration{}
	conf.ApplyDefaults()

	if _, err := conf.BuildInputs(nil); err != mortgage.ErrUnresolvedRate {
		t.Errorf("BuildInputs() error = %v, expected ErrUnresolvedRate", err)
	}
}

func TestBuildInputsUsesRateSource(t *testing.T) {
	conf := &Configuration{}
	conf.ApplyDefaults()

	inputs, err := conf.BuildInputs(mortgage.StaticRateSource{Rate: 7.0})
	if err != nil {
		t.Fatalf("BuildInputs() unexpected error = %v", err)
	}
	if math.Abs(inputs.InterestRate-7.0) > 0.001 {
		t.Errorf("InterestRate = %v, expected 7.0 from the rate source", inputs.InterestRate)
	}
	if math.Abs(inputs.MarketReferenceRate-7.0) > 0.001 {
		t.Errorf("MarketReferenceRate = %v, expected 7.0", inputs.MarketReferenceRate)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := &Configuration{
		Categories: []Category{
			{
				Name: "Income",
				Kind: KindIncome,
				Items: []Item{
					{
						Label: "Salary", Amount: 100000, Type: "income", Frequency: "annual",
						Active: true, IncomeEntry: "gross",
						WithholdingTaxPct: 80, Withholding401kPct: 30,
					},
					{Label: "Side work", Amount: 500, Type: "income", Frequency: "weekly", Active: true},
				},
			},
		},
		Mortgage: Mortgage{
			ReferenceRate: 6.5,
			DownPaymentSources: Category{
				Name: "Down Payment Sources",
				Items: []Item{
					{Label: "Recurring transfer", Amount: 500, Type: "income", Frequency: "monthly", Active: true},
				},
			},
			TermOptions: OptionGroup{
				Name: "Term Length",
				Options: []Option{
					{ID: "term-15", Value: 15, Active: true},
					{ID: "term-30", Value: 30, Active: true},
				},
			},
		},
	}

	warnings := conf.ValidateConfiguration()

	expectSubstrings := []string{
		"withholding percentages summing to 110.0",
		"unknown frequency 'weekly'",
		"down-payment capital is a lump sum",
		"2 active options",
	}
	for _, expected := range expectSubstrings {
		found := false
		for _, warning := range warnings {
			if strings.Contains(warning, expected) {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a warning containing %q, got %v", expected, warnings)
		}
	}
}

func TestDefaultCategoriesCoverExpectedKinds(t *testing.T) {
	kinds := make(map[string]bool)
	for _, category := range DefaultCategories() {
		kinds[category.Kind] = true
	}
	for _, expected := range []string{KindIncome, KindExpenses, KindFixedDebts, KindFutureIncome, KindHome} {
		if !kinds[expected] {
			t.Errorf("default categories missing kind %s", expected)
		}
	}
}
