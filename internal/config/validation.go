package config

import (
	"fmt"

	"github.com/homeready/homeready/internal/ledger"
	"github.com/homeready/homeready/pkg/constants"
)

// ValidateConfiguration performs general validation of the profile and
// returns warnings. Warnings are surfaced, not fatal; the calculation
// proceeds with the documented fallback behavior for each.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	for _, category := range conf.Categories {
		warnings = append(warnings, validateItems(category.Name, category.Items)...)
	}

	for _, item := range conf.Mortgage.DownPaymentSources.Items {
		if item.Active && item.Frequency != string(ledger.FrequencyOneTime) {
			warnings = append(warnings, fmt.Sprintf(
				"Down-payment source '%s' has frequency '%s'; down-payment capital is a lump sum and the item is excluded",
				item.Label, item.Frequency))
		}
	}

	warnings = append(warnings, validateRadioGroup(conf.Mortgage.DownPaymentPercentage)...)
	warnings = append(warnings, validateRadioGroup(conf.Mortgage.TermOptions)...)
	warnings = append(warnings, validateRadioGroup(conf.Mortgage.RateOptions)...)

	if conf.Property != nil && conf.Property.Price <= 0 {
		warnings = append(warnings, "Property is configured with a non-positive price")
	}

	return warnings
}

func validateItems(categoryName string, items []Item) []string {
	var warnings []string
	for _, item := range items {
		converted := ledger.Item{
			Frequency:                ledger.Frequency(item.Frequency),
			WithholdingTaxPct:        item.WithholdingTaxPct,
			Withholding401kPct:       item.Withholding401kPct,
			WithholdingHealthcarePct: item.WithholdingHealthcarePct,
			WithholdingHSAPct:        item.WithholdingHSAPct,
			WithholdingOtherPct:      item.WithholdingOtherPct,
		}

		if item.Frequency != "" && !ledger.KnownFrequency(converted) {
			warnings = append(warnings, fmt.Sprintf(
				"Item '%s' in '%s' has unknown frequency '%s'; treating it as monthly",
				item.Label, categoryName, item.Frequency))
		}

		if item.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf(
				"Item '%s' in '%s' has a negative amount; amounts are unsigned and direction comes from the item type",
				item.Label, categoryName))
		}

		if sum := ledger.RawWithholdingSum(converted); sum > constants.PercentageMultiplier {
			warnings = append(warnings, fmt.Sprintf(
				"Item '%s' in '%s' has withholding percentages summing to %.1f; clamping to 100",
				item.Label, categoryName, sum))
		}
	}
	return warnings
}

func validateRadioGroup(group OptionGroup) []string {
	if len(group.Options) == 0 {
		return nil
	}
	active := 0
	for _, option := range group.Options {
		if option.Active {
			active++
		}
	}
	if active > 1 {
		return []string{fmt.Sprintf(
			"Option group '%s' has %d active options; radio groups expect at most one and the first is used",
			group.Name, active)}
	}
	return nil
}
