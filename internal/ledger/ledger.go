// Package ledger defines the data structures for financial line items and
// includes functions for normalizing them into monthly figures.
package ledger

import (
	"github.com/homeready/homeready/pkg/constants"
	"github.com/homeready/homeready/pkg/mathutil"
)

// ItemType distinguishes income, expense, and informational line items.
// Amounts are always non-negative; direction is implied by the type.
type ItemType string

const (
	ItemIncome  ItemType = "income"
	ItemExpense ItemType = "expense"
	ItemInfo    ItemType = "info"
)

// Frequency describes how often an item's amount recurs.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
	FrequencyOneTime Frequency = "one-time"
)

// IncomeEntry indicates whether an income item's amount is entered before or
// after withholdings.
type IncomeEntry string

const (
	IncomeEntryGross IncomeEntry = "gross"
	IncomeEntryNet   IncomeEntry = "net"
)

// Item is a single financial line item. Withholding percentages are only
// meaningful when Type is income and IncomeEntry is gross.
type Item struct {
	ID          string
	Label       string
	Amount      float64
	Type        ItemType
	Frequency   Frequency
	Active      bool
	Editable    bool
	IncomeEntry IncomeEntry

	WithholdingTaxPct        float64
	Withholding401kPct       float64
	WithholdingHealthcarePct float64
	WithholdingHSAPct        float64
	WithholdingOtherPct      float64
}

// Category is a named grouping of items. Type is a presentation hint
// (input, radio, default) and carries no engine semantics.
type Category struct {
	ID    string
	Name  string
	Type  string
	Items []Item
}

// MonthlyAmount converts an item's amount and frequency into a canonical
// monthly figure. One-time items never contribute to recurring cashflow; they
// enter calculations only through the down-payment aggregation. An
// unrecognized frequency is treated as monthly rather than failing; callers
// surface those through Warnings.
func MonthlyAmount(item Item) float64 {
	switch item.Frequency {
	case FrequencyAnnual:
		return item.Amount / constants.MonthsPerYear
	case FrequencyOneTime:
		return 0
	default:
		return item.Amount
	}
}

// KnownFrequency reports whether the item's frequency is one of the
// recognized values.
func KnownFrequency(item Item) bool {
	switch item.Frequency {
	case FrequencyMonthly, FrequencyAnnual, FrequencyOneTime:
		return true
	}
	return false
}

// WithholdingSum returns the combined withholding percentage for an item,
// clamped to [0, 100] so take-home contributions can never go negative.
func WithholdingSum(item Item) float64 {
	sum := item.WithholdingTaxPct + item.Withholding401kPct +
		item.WithholdingHealthcarePct + item.WithholdingHSAPct + item.WithholdingOtherPct
	return mathutil.Clamp(sum, 0, constants.PercentageMultiplier)
}

// RawWithholdingSum returns the unclamped withholding percentage sum, used
// for validation warnings.
func RawWithholdingSum(item Item) float64 {
	return item.WithholdingTaxPct + item.Withholding401kPct +
		item.WithholdingHealthcarePct + item.WithholdingHSAPct + item.WithholdingOtherPct
}

// MonthlyTotal sums the normalized monthly amounts of all active items across
// the given categories. Inactive items are retained in the ledger but never
// contribute.
func MonthlyTotal(categories ...Category) float64 {
	total := 0.0
	for _, category := range categories {
		for _, item := range category.Items {
			if !item.Active {
				continue
			}
			total += MonthlyAmount(item)
		}
	}
	return total
}
